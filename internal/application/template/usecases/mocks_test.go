package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/prism-finance/prism/internal/domain/template"
)

type mockTemplateRepository struct {
	items     map[string]*template.Template
	deleted   []string
	CreateErr error
	UpdateErr error
}

func newMockTemplateRepository(seed ...*template.Template) *mockTemplateRepository {
	r := &mockTemplateRepository{items: map[string]*template.Template{}}
	for _, t := range seed {
		r.items[t.ID()] = t
	}
	return r
}

func (r *mockTemplateRepository) Create(ctx context.Context, t *template.Template) error {
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.items[t.ID()] = t
	return nil
}

func (r *mockTemplateRepository) GetByID(ctx context.Context, id string) (*template.Template, error) {
	return r.items[id], nil
}

func (r *mockTemplateRepository) Update(ctx context.Context, t *template.Template) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.items[t.ID()] = t
	return nil
}

func (r *mockTemplateRepository) Delete(ctx context.Context, id string) error {
	delete(r.items, id)
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *mockTemplateRepository) List(ctx context.Context, filter template.ListFilter) ([]*template.Template, int64, error) {
	var out []*template.Template
	for _, t := range r.items {
		if filter.CompanyID == "" || t.CompanyID() == filter.CompanyID {
			out = append(out, t)
		}
	}
	return out, int64(len(out)), nil
}

type mockContractCounter struct {
	CountByTemplateIDFunc func(ctx context.Context, templateID string) (int64, error)
}

func (m *mockContractCounter) CountByTemplateID(ctx context.Context, templateID string) (int64, error) {
	if m.CountByTemplateIDFunc != nil {
		return m.CountByTemplateIDFunc(ctx, templateID)
	}
	return 0, nil
}

// inlineTx runs fn directly and records that a transaction was requested.
type inlineTx struct {
	calls int
}

func (t *inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
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

// stuckBlobStore stores files but cannot delete them.
type stuckBlobStore struct {
	memBlobStore
	deleteCalls []string
}

func (s *stuckBlobStore) Delete(ctx context.Context, key string) error {
	s.deleteCalls = append(s.deleteCalls, key)
	return errors.New("bucket is read-only")
}

// textConverter treats every .html or .txt file as HTML and fails on "broken".
type textConverter struct{}

func (textConverter) ToHTML(ctx context.Context, fileName string, data []byte) (string, error) {
	switch {
	case strings.HasSuffix(fileName, ".exe"):
		return "", fmt.Errorf("%w: .exe", template.ErrUnsupportedFormat)
	case strings.Contains(fileName, "broken"):
		return "", errors.New("corrupt archive")
	}
	return string(data), nil
}
