package usecases

import (
	"context"
	"errors"

	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/invoice"
	"github.com/prism-finance/prism/internal/domain/purchaseorder"
	"github.com/prism-finance/prism/internal/domain/supplier"
)

type mockInvoiceRepository struct {
	items   map[string]*invoice.Invoice
	deleted []string
}

func newMockInvoiceRepository() *mockInvoiceRepository {
	return &mockInvoiceRepository{items: map[string]*invoice.Invoice{}}
}

func (r *mockInvoiceRepository) Create(ctx context.Context, inv *invoice.Invoice) error {
	r.items[inv.ID()] = inv
	return nil
}

func (r *mockInvoiceRepository) GetByID(ctx context.Context, id string) (*invoice.Invoice, error) {
	return r.items[id], nil
}

func (r *mockInvoiceRepository) Update(ctx context.Context, inv *invoice.Invoice) error {
	r.items[inv.ID()] = inv
	return nil
}

func (r *mockInvoiceRepository) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *mockInvoiceRepository) List(ctx context.Context, filter invoice.ListFilter) ([]*invoice.Invoice, int64, error) {
	var out []*invoice.Invoice
	for _, inv := range r.items {
		if filter.CompanyID != "" && inv.CompanyID() != filter.CompanyID {
			continue
		}
		if filter.SupplierID != "" && inv.SupplierID() != filter.SupplierID {
			continue
		}
		if filter.PurchaseOrderID != "" && inv.PurchaseOrderID() != filter.PurchaseOrderID {
			continue
		}
		if filter.Status != nil && inv.Status() != *filter.Status {
			continue
		}
		out = append(out, inv)
	}
	return out, int64(len(out)), nil
}

func (r *mockInvoiceRepository) ExistsByNumber(ctx context.Context, supplierID, number string) (bool, error) {
	for _, inv := range r.items {
		if inv.SupplierID() == supplierID && inv.Number() == number {
			return true, nil
		}
	}
	return false, nil
}

type supplierSet []*supplier.Supplier

func (s supplierSet) GetByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	for _, sup := range s {
		if sup.ID() == id {
			return sup, nil
		}
	}
	return nil, nil
}

type orderSet []*purchaseorder.PurchaseOrder

func (s orderSet) GetByID(ctx context.Context, id string) (*purchaseorder.PurchaseOrder, error) {
	for _, po := range s {
		if po.ID() == id {
			return po, nil
		}
	}
	return nil, nil
}

// fixedConditions answers AcceptedActive with a constant.
type fixedConditions bool

func (f fixedConditions) AcceptedActive(ctx context.Context, companyID, supplierID string) (bool, error) {
	return bool(f), nil
}

type memBlobStore map[string][]byte

func (m memBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	m[key] = data
	return nil
}

func (m memBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, ok := m[key]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return data, nil
}

func (m memBlobStore) Delete(ctx context.Context, key string) error {
	delete(m, key)
	return nil
}

type recordingNotifier struct {
	events []appnotification.Event
}

func (n *recordingNotifier) Dispatch(ctx context.Context, evt appnotification.Event) {
	n.events = append(n.events, evt)
}
