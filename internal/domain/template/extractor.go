package template

import (
	"regexp"
	"sort"
)

var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// ExtractVariables returns the distinct placeholder names found in html,
// sorted. Names are taken verbatim from between the braces.
func ExtractVariables(html string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(html, -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))

	for _, m := range matches {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		names = append(names, m[1])
	}

	sort.Strings(names)
	return names
}

// Placeholder formats name as it appears in a template.
func Placeholder(name string) string {
	return "{{" + name + "}}"
}

// ReplaceVariables substitutes each placeholder in html with lookup(name)
// in a single pass. Placeholders whose lookup reports false are left as is,
// and substituted text is never scanned again.
func ReplaceVariables(html string, lookup func(name string) (string, bool)) string {
	return placeholderPattern.ReplaceAllStringFunc(html, func(match string) string {
		name := match[2 : len(match)-2]
		if value, ok := lookup(name); ok {
			return value
		}
		return match
	})
}
