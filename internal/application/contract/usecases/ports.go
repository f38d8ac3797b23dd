package usecases

import (
	"context"

	"github.com/prism-finance/prism/internal/application/contract/rendering"
	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/domain/template"
)

type TemplateReader interface {
	GetByID(ctx context.Context, id string) (*template.Template, error)
}

type SupplierReader interface {
	GetByID(ctx context.Context, id string) (*supplier.Supplier, error)
}

type ContractRenderer interface {
	Render(ctx context.Context, tpl *template.Template, s *supplier.Supplier, overrides map[string]any) (*rendering.Result, error)
}

// Notifier is satisfied by the notification dispatcher.
type Notifier interface {
	Dispatch(ctx context.Context, evt appnotification.Event)
}
