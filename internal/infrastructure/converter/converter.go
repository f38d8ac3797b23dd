// Package converter turns uploaded template files into sanitized HTML.
package converter

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"path/filepath"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/prism-finance/prism/internal/domain/template"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// HTMLConverter implements common.DocumentConverter. The file extension
// selects the input format.
type HTMLConverter struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
	logger logger.Interface
}

func NewHTMLConverter(logger logger.Interface) *HTMLConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Table,
			extension.Strikethrough,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("p", "span", "div", "table", "td", "th")
	policy.AllowAttrs("id").Matching(bluemonday.SpaceSeparatedTokens).OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	return &HTMLConverter{
		md:     md,
		policy: policy,
		logger: logger,
	}
}

func (c *HTMLConverter) ToHTML(ctx context.Context, fileName string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".md", ".markdown":
		return c.markdownToHTML(data)
	case ".html", ".htm":
		return c.policy.Sanitize(string(data)), nil
	case ".txt":
		return textToHTML(string(data)), nil
	case ".docx":
		paragraphs, err := docxParagraphs(data)
		if err != nil {
			c.logger.Warnw("failed to read docx template", "file_name", fileName, "error", err)
			return "", err
		}
		return paragraphsToHTML(paragraphs), nil
	default:
		return "", fmt.Errorf("%w: %q", template.ErrUnsupportedFormat, ext)
	}
}

func (c *HTMLConverter) markdownToHTML(data []byte) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(data, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return c.policy.Sanitize(buf.String()), nil
}

// textToHTML splits on blank lines; single newlines become <br/>.
func textToHTML(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var paragraphs []string
	for _, block := range strings.Split(text, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			paragraphs = append(paragraphs, block)
		}
	}
	return paragraphsToHTML(paragraphs)
}

func paragraphsToHTML(paragraphs []string) string {
	var b strings.Builder
	for _, p := range paragraphs {
		lines := strings.Split(p, "\n")
		for i, line := range lines {
			lines[i] = html.EscapeString(line)
		}
		b.WriteString("<p>")
		b.WriteString(strings.Join(lines, "<br/>"))
		b.WriteString("</p>\n")
	}
	return b.String()
}
