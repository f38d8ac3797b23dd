package rendering

import (
	"context"
	"encoding/json"
	"fmt"
	"html"

	"github.com/spf13/cast"

	"github.com/prism-finance/prism/internal/application/common"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/domain/template"
	"github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// RenderHTML replaces every {{key}} in body with the escaped string form of
// vars[key]. Unknown placeholders stay literal.
func RenderHTML(body string, vars map[string]any) string {
	return template.ReplaceVariables(body, func(name string) (string, bool) {
		v, ok := vars[name]
		if !ok {
			return "", false
		}
		return html.EscapeString(Stringify(v)), true
	})
}

// Stringify converts a variable value to text. nil is the empty string and
// values cast cannot handle are JSON encoded.
func Stringify(v any) string {
	if v == nil {
		return ""
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}

// Result is a rendered contract body together with the mapping used.
type Result struct {
	HTML      string
	Variables map[string]any
}

// Renderer loads a template file, converts it to HTML and fills it in.
type Renderer struct {
	store     common.BlobStore
	converter common.DocumentConverter
	logger    logger.Interface
}

func NewRenderer(store common.BlobStore, converter common.DocumentConverter, logger logger.Interface) *Renderer {
	return &Renderer{
		store:     store,
		converter: converter,
		logger:    logger,
	}
}

func (r *Renderer) Render(ctx context.Context, tpl *template.Template, s *supplier.Supplier, overrides map[string]any) (*Result, error) {
	data, err := r.store.Get(ctx, tpl.FilePath())
	if err != nil {
		r.logger.Errorw("failed to read template file",
			"template_id", tpl.ID(),
			"file_path", tpl.FilePath(),
			"error", err,
		)
		return nil, errors.NewUpstreamError("failed to read template file")
	}

	body, err := r.converter.ToHTML(ctx, tpl.FileName(), data)
	if err != nil {
		r.logger.Errorw("failed to convert template",
			"template_id", tpl.ID(),
			"file_name", tpl.FileName(),
			"error", err,
		)
		return nil, errors.NewUpstreamError("failed to convert template", err.Error())
	}

	vars := ResolveVariables(s, overrides)
	return &Result{
		HTML:      RenderHTML(body, vars),
		Variables: vars,
	}, nil
}
