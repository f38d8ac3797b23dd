package usecases

import (
	"context"

	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/supplier"
)

type mockSupplierRepository struct {
	items             map[string]*supplier.Supplier
	CreateErr         error
	ExistsBySIRETFunc func(ctx context.Context, companyID, siret string) (bool, error)
	lastFilter        supplier.ListFilter
}

func newMockSupplierRepository(seed ...*supplier.Supplier) *mockSupplierRepository {
	r := &mockSupplierRepository{items: map[string]*supplier.Supplier{}}
	for _, s := range seed {
		r.items[s.ID()] = s
	}
	return r
}

func (r *mockSupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.items[s.ID()] = s
	return nil
}

func (r *mockSupplierRepository) GetByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	return r.items[id], nil
}

func (r *mockSupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	r.items[s.ID()] = s
	return nil
}

func (r *mockSupplierRepository) List(ctx context.Context, filter supplier.ListFilter) ([]*supplier.Supplier, int64, error) {
	r.lastFilter = filter
	var out []*supplier.Supplier
	for _, s := range r.items {
		if filter.CompanyID != "" && s.CompanyID() != filter.CompanyID {
			continue
		}
		if filter.SupplierID != "" && s.ID() != filter.SupplierID {
			continue
		}
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (r *mockSupplierRepository) ExistsBySIRET(ctx context.Context, companyID, siret string) (bool, error) {
	if r.ExistsBySIRETFunc != nil {
		return r.ExistsBySIRETFunc(ctx, companyID, siret)
	}
	for _, s := range r.items {
		if s.CompanyID() == companyID && s.SIRET() == siret {
			return true, nil
		}
	}
	return false, nil
}

type recordingNotifier struct {
	events []appnotification.Event
}

func (n *recordingNotifier) Dispatch(ctx context.Context, evt appnotification.Event) {
	n.events = append(n.events, evt)
}
