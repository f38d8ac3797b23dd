package usecases

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/prism-finance/prism/internal/application/contract/rendering"
	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/contract"
	vo "github.com/prism-finance/prism/internal/domain/contract/valueobjects"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/domain/template"
	"github.com/prism-finance/prism/internal/domain/user"
)

// memContractRepository keeps snapshots so callers cannot mutate stored state.
type memContractRepository struct {
	mu        sync.Mutex
	items     map[string]*contract.Contract
	CreateErr error
	// ApplyTransitionFunc, when set, replaces the conditional update.
	ApplyTransitionFunc func(ctx context.Context, c *contract.Contract, from vo.ContractStatus) error
}

func newMemContractRepository(seed ...*contract.Contract) *memContractRepository {
	r := &memContractRepository{items: map[string]*contract.Contract{}}
	for _, c := range seed {
		r.items[c.ID()] = snapshot(c)
	}
	return r
}

func snapshot(c *contract.Contract) *contract.Contract {
	copySig := func(s *contract.Signature) *contract.Signature {
		if s == nil {
			return nil
		}
		cp := *s
		return &cp
	}
	out, _ := contract.ReconstructContract(contract.ReconstructParams{
		ID:                c.ID(),
		CompanyID:         c.CompanyID(),
		TemplateID:        c.TemplateID(),
		SupplierID:        c.SupplierID(),
		Name:              c.Name(),
		Variables:         c.Variables(),
		Content:           c.Content(),
		FilePath:          c.FilePath(),
		Status:            c.Status(),
		SupplierSignature: copySig(c.SupplierSignature()),
		AdminSignature:    copySig(c.AdminSignature()),
		ExpiryDate:        c.ExpiryDate(),
		CreatedBy:         c.CreatedBy(),
		CreatedAt:         c.CreatedAt(),
		UpdatedAt:         c.UpdatedAt(),
	})
	return out
}

func (r *memContractRepository) Create(ctx context.Context, c *contract.Contract) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[c.ID()] = snapshot(c)
	return nil
}

func (r *memContractRepository) GetByID(ctx context.Context, id string) (*contract.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return snapshot(c), nil
}

func (r *memContractRepository) List(ctx context.Context, filter contract.ListFilter) ([]*contract.Contract, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*contract.Contract
	for _, c := range r.items {
		if filter.CompanyID != "" && c.CompanyID() != filter.CompanyID {
			continue
		}
		if filter.SupplierID != "" && c.SupplierID() != filter.SupplierID {
			continue
		}
		if filter.Status != nil && c.Status() != *filter.Status {
			continue
		}
		out = append(out, snapshot(c))
	}
	return out, int64(len(out)), nil
}

func (r *memContractRepository) CountByTemplateID(ctx context.Context, templateID string) (int64, error) {
	return 0, nil
}

func (r *memContractRepository) ApplyTransition(ctx context.Context, c *contract.Contract, from vo.ContractStatus) error {
	if r.ApplyTransitionFunc != nil {
		return r.ApplyTransitionFunc(ctx, c, from)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[c.ID()]
	if !ok || stored.Status() != from {
		return contract.ErrConcurrentModification
	}
	r.items[c.ID()] = snapshot(c)
	return nil
}

func (r *memContractRepository) ListExpirable(ctx context.Context, now time.Time, limit int) ([]*contract.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*contract.Contract
	for _, c := range r.items {
		if !c.Status().IsTerminal() && c.IsPastExpiry(now) {
			out = append(out, snapshot(c))
		}
	}
	return out, nil
}

func (r *memContractRepository) get(id string) *contract.Contract {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id]
}

type mockTemplateReader struct {
	GetByIDFunc func(ctx context.Context, id string) (*template.Template, error)
}

func (m *mockTemplateReader) GetByID(ctx context.Context, id string) (*template.Template, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockSupplierReader struct {
	GetByIDFunc func(ctx context.Context, id string) (*supplier.Supplier, error)
}

func (m *mockSupplierReader) GetByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockBlobStore struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	PutErr  error
	deleted []string
}

func newMockBlobStore() *mockBlobStore {
	return &mockBlobStore{blobs: map[string][]byte{}}
}

func (m *mockBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = data
	return nil
}

func (m *mockBlobStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return data, nil
}

func (m *mockBlobStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	m.deleted = append(m.deleted, key)
	return nil
}

type converterFunc func(ctx context.Context, fileName string, data []byte) (string, error)

func (f converterFunc) ToHTML(ctx context.Context, fileName string, data []byte) (string, error) {
	return f(ctx, fileName, data)
}

var passthroughConverter = converterFunc(func(ctx context.Context, fileName string, data []byte) (string, error) {
	return string(data), nil
})

var _ ContractRenderer = (*rendering.Renderer)(nil)

// recordingNotifier captures dispatched events.
type recordingNotifier struct {
	mu     sync.Mutex
	events []appnotification.Event
}

func (n *recordingNotifier) Dispatch(ctx context.Context, evt appnotification.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, evt)
}

func (n *recordingNotifier) types() []notification.Type {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]notification.Type, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.Type)
	}
	return out
}

// userDirectory answers audience lookups from a fixed user list.
type userDirectory []*user.User

func (d userDirectory) FindActive(ctx context.Context, filter user.ListFilter) ([]*user.User, error) {
	var out []*user.User
	for _, u := range d {
		if filter.Role != nil && u.Role() != *filter.Role {
			continue
		}
		if filter.CompanyID != "" && u.CompanyID() != filter.CompanyID {
			continue
		}
		if filter.SupplierID != "" && u.SupplierID() != filter.SupplierID {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

// memNotificationRepository stores what the real dispatcher writes.
type memNotificationRepository struct {
	mu    sync.Mutex
	items []*notification.Notification
}

func (r *memNotificationRepository) BulkCreate(ctx context.Context, items []*notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, items...)
	return nil
}

func (r *memNotificationRepository) GetByID(ctx context.Context, id string) (*notification.Notification, error) {
	return nil, nil
}

func (r *memNotificationRepository) ListByUser(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}

func (r *memNotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (r *memNotificationRepository) MarkAsRead(ctx context.Context, id string, at time.Time) error {
	return nil
}

func (r *memNotificationRepository) MarkAllAsRead(ctx context.Context, userID string, at time.Time) (int64, error) {
	return 0, nil
}

func (r *memNotificationRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func (r *memNotificationRepository) ofType(t notification.Type) []*notification.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*notification.Notification
	for _, n := range r.items {
		if n.Type() == t {
			out = append(out, n)
		}
	}
	return out
}
