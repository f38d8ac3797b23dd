package usecases

import (
	"context"
	"sort"
	"time"

	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/generalconditions"
	"github.com/prism-finance/prism/internal/domain/supplier"
)

type mockConditionsRepository struct {
	items map[string]*generalconditions.GeneralConditions
}

func newMockConditionsRepository() *mockConditionsRepository {
	return &mockConditionsRepository{items: map[string]*generalconditions.GeneralConditions{}}
}

func (r *mockConditionsRepository) Create(ctx context.Context, gc *generalconditions.GeneralConditions) error {
	r.items[gc.ID()] = gc
	return nil
}

func (r *mockConditionsRepository) GetByID(ctx context.Context, id string) (*generalconditions.GeneralConditions, error) {
	return r.items[id], nil
}

func (r *mockConditionsRepository) Update(ctx context.Context, gc *generalconditions.GeneralConditions) error {
	r.items[gc.ID()] = gc
	return nil
}

func (r *mockConditionsRepository) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	return nil
}

func (r *mockConditionsRepository) List(ctx context.Context, filter generalconditions.ListFilter) ([]*generalconditions.GeneralConditions, error) {
	var out []*generalconditions.GeneralConditions
	for _, gc := range r.items {
		if filter.CompanyID != "" && gc.CompanyID() != filter.CompanyID {
			continue
		}
		if filter.ActiveOnly && !gc.IsActive() {
			continue
		}
		out = append(out, gc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version() > out[j].Version() })
	return out, nil
}

func (r *mockConditionsRepository) GetActive(ctx context.Context, companyID string) (*generalconditions.GeneralConditions, error) {
	for _, gc := range r.items {
		if gc.CompanyID() == companyID && gc.IsActive() {
			return gc, nil
		}
	}
	return nil, nil
}

func (r *mockConditionsRepository) DeactivateOthers(ctx context.Context, companyID, keepID string) error {
	inactive := false
	for _, gc := range r.items {
		if gc.CompanyID() == companyID && gc.ID() != keepID {
			if _, err := gc.Update(generalconditions.UpdateParams{IsActive: &inactive}, time.Now()); err != nil {
				return err
			}
		}
	}
	return nil
}

type mockAcceptanceRepository struct {
	items []*generalconditions.Acceptance
}

func (r *mockAcceptanceRepository) Create(ctx context.Context, a *generalconditions.Acceptance) error {
	r.items = append(r.items, a)
	return nil
}

func (r *mockAcceptanceRepository) Find(ctx context.Context, supplierID, conditionsID string) (*generalconditions.Acceptance, error) {
	for _, a := range r.items {
		if a.SupplierID() == supplierID && a.ConditionsID() == conditionsID {
			return a, nil
		}
	}
	return nil, nil
}

func (r *mockAcceptanceRepository) ListByConditions(ctx context.Context, conditionsID string) ([]*generalconditions.Acceptance, error) {
	var out []*generalconditions.Acceptance
	for _, a := range r.items {
		if a.ConditionsID() == conditionsID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *mockAcceptanceRepository) CountByConditions(ctx context.Context, conditionsID string) (int64, error) {
	items, _ := r.ListByConditions(ctx, conditionsID)
	return int64(len(items)), nil
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

// inlineTx runs fn directly and records that a transaction was requested.
type inlineTx struct {
	calls int
}

func (t *inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

// markdownConverter wraps the input instead of rendering it.
type markdownConverter struct{}

func (markdownConverter) ToHTML(ctx context.Context, fileName string, data []byte) (string, error) {
	return "<div data-file=\"" + fileName + "\">" + string(data) + "</div>", nil
}

type recordingNotifier struct {
	events []appnotification.Event
}

func (n *recordingNotifier) Dispatch(ctx context.Context, evt appnotification.Event) {
	n.events = append(n.events, evt)
}
