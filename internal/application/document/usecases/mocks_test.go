package usecases

import (
	"context"
	"errors"

	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/document"
	"github.com/prism-finance/prism/internal/domain/supplier"
)

type mockDocumentRepository struct {
	items   map[string]*document.Document
	deleted []string
}

func newMockDocumentRepository() *mockDocumentRepository {
	return &mockDocumentRepository{items: map[string]*document.Document{}}
}

func (r *mockDocumentRepository) Create(ctx context.Context, d *document.Document) error {
	r.items[d.ID()] = d
	return nil
}

func (r *mockDocumentRepository) GetByID(ctx context.Context, id string) (*document.Document, error) {
	return r.items[id], nil
}

func (r *mockDocumentRepository) Update(ctx context.Context, d *document.Document) error {
	r.items[d.ID()] = d
	return nil
}

func (r *mockDocumentRepository) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *mockDocumentRepository) List(ctx context.Context, filter document.ListFilter) ([]*document.Document, int64, error) {
	var out []*document.Document
	for _, d := range r.items {
		if d.SupplierID() != filter.SupplierID {
			continue
		}
		if filter.Status != nil && d.Status() != *filter.Status {
			continue
		}
		out = append(out, d)
	}
	return out, int64(len(out)), nil
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
