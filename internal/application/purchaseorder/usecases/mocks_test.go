package usecases

import (
	"context"

	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/purchaseorder"
	"github.com/prism-finance/prism/internal/domain/supplier"
)

type mockPurchaseOrderRepository struct {
	items map[string]*purchaseorder.PurchaseOrder
	// TransitionErr is returned by ApplyTransition when set.
	TransitionErr error
}

func newMockPurchaseOrderRepository() *mockPurchaseOrderRepository {
	return &mockPurchaseOrderRepository{items: map[string]*purchaseorder.PurchaseOrder{}}
}

func (r *mockPurchaseOrderRepository) Create(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	r.items[po.ID()] = po
	return nil
}

func (r *mockPurchaseOrderRepository) GetByID(ctx context.Context, id string) (*purchaseorder.PurchaseOrder, error) {
	return r.items[id], nil
}

func (r *mockPurchaseOrderRepository) Update(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	r.items[po.ID()] = po
	return nil
}

func (r *mockPurchaseOrderRepository) ApplyTransition(ctx context.Context, po *purchaseorder.PurchaseOrder, from purchaseorder.Status) error {
	if r.TransitionErr != nil {
		return r.TransitionErr
	}
	r.items[po.ID()] = po
	return nil
}

func (r *mockPurchaseOrderRepository) List(ctx context.Context, filter purchaseorder.ListFilter) ([]*purchaseorder.PurchaseOrder, int64, error) {
	var out []*purchaseorder.PurchaseOrder
	for _, po := range r.items {
		if filter.CompanyID != "" && po.CompanyID() != filter.CompanyID {
			continue
		}
		if filter.SupplierID != "" && po.SupplierID() != filter.SupplierID {
			continue
		}
		if filter.HideDrafts && po.Status() == purchaseorder.StatusDraft {
			continue
		}
		if filter.Status != nil && po.Status() != *filter.Status {
			continue
		}
		out = append(out, po)
	}
	return out, int64(len(out)), nil
}

func (r *mockPurchaseOrderRepository) ExistsByNumber(ctx context.Context, companyID, number string) (bool, error) {
	for _, po := range r.items {
		if po.CompanyID() == companyID && po.Number() == number {
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

type recordingNotifier struct {
	events []appnotification.Event
}

func (n *recordingNotifier) Dispatch(ctx context.Context, evt appnotification.Event) {
	n.events = append(n.events, evt)
}
