package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-finance/prism/internal/application/document/dto"
	"github.com/prism-finance/prism/internal/interfaces/http/handlers/testutil"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
)

type mockDocumentService struct {
	uploadFn   func(ctx context.Context, identity *authorization.Identity, supplierID string, req dto.UploadDocumentRequest) (*dto.DocumentDTO, error)
	reviewFn   func(ctx context.Context, identity *authorization.Identity, supplierID, id string, req dto.ReviewDocumentRequest) (*dto.DocumentDTO, error)
	getFn      func(ctx context.Context, identity *authorization.Identity, supplierID, id string) (*dto.DocumentDTO, error)
	downloadFn func(ctx context.Context, identity *authorization.Identity, supplierID, id string) (*dto.DocumentFile, error)
	listFn     func(ctx context.Context, identity *authorization.Identity, supplierID string, req dto.ListDocumentsRequest) (*dto.ListDocumentsResponse, error)
	deleteFn   func(ctx context.Context, identity *authorization.Identity, supplierID, id string) error
}

func (m *mockDocumentService) Upload(ctx context.Context, identity *authorization.Identity, supplierID string, req dto.UploadDocumentRequest) (*dto.DocumentDTO, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, identity, supplierID, req)
	}
	return &dto.DocumentDTO{}, nil
}

func (m *mockDocumentService) Review(ctx context.Context, identity *authorization.Identity, supplierID, id string, req dto.ReviewDocumentRequest) (*dto.DocumentDTO, error) {
	if m.reviewFn != nil {
		return m.reviewFn(ctx, identity, supplierID, id, req)
	}
	return &dto.DocumentDTO{}, nil
}

func (m *mockDocumentService) Get(ctx context.Context, identity *authorization.Identity, supplierID, id string) (*dto.DocumentDTO, error) {
	if m.getFn != nil {
		return m.getFn(ctx, identity, supplierID, id)
	}
	return &dto.DocumentDTO{}, nil
}

func (m *mockDocumentService) Download(ctx context.Context, identity *authorization.Identity, supplierID, id string) (*dto.DocumentFile, error) {
	if m.downloadFn != nil {
		return m.downloadFn(ctx, identity, supplierID, id)
	}
	return &dto.DocumentFile{}, nil
}

func (m *mockDocumentService) List(ctx context.Context, identity *authorization.Identity, supplierID string, req dto.ListDocumentsRequest) (*dto.ListDocumentsResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx, identity, supplierID, req)
	}
	return &dto.ListDocumentsResponse{}, nil
}

func (m *mockDocumentService) Delete(ctx context.Context, identity *authorization.Identity, supplierID, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, identity, supplierID, id)
	}
	return nil
}

func TestDocumentHandler_Upload(t *testing.T) {
	var gotSupplier string
	var got dto.UploadDocumentRequest
	svc := &mockDocumentService{
		uploadFn: func(_ context.Context, _ *authorization.Identity, supplierID string, req dto.UploadDocumentRequest) (*dto.DocumentDTO, error) {
			gotSupplier = supplierID
			got = req
			return &dto.DocumentDTO{ID: "doc_1", Status: "pending"}, nil
		},
	}
	h := NewDocumentHandler(svc, 0, testutil.NewMockLogger())
	c, w := testutil.NewMultipartContext(http.MethodPost, "/suppliers/sup_1/documents", map[string]string{
		"name":     "Insurance",
		"category": "insurance",
	}, "file", "policy.pdf", []byte("%PDF-1.4"))
	testutil.SetIdentity(c, testSupplier)
	testutil.SetURLParam(c, "id", "sup_1")

	h.Upload(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "sup_1", gotSupplier)
	assert.Equal(t, "Insurance", got.Name)
	assert.Equal(t, "insurance", got.Category)
	assert.Equal(t, "policy.pdf", got.FileName)
}

func TestDocumentHandler_Review(t *testing.T) {
	t.Run("forwards status and notes", func(t *testing.T) {
		svc := &mockDocumentService{
			reviewFn: func(_ context.Context, _ *authorization.Identity, supplierID, id string, req dto.ReviewDocumentRequest) (*dto.DocumentDTO, error) {
				assert.Equal(t, "sup_1", supplierID)
				assert.Equal(t, "doc_1", id)
				return &dto.DocumentDTO{ID: id, Status: req.Status}, nil
			},
		}
		h := NewDocumentHandler(svc, 0, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPatch, "/suppliers/sup_1/documents/doc_1", map[string]string{
			"status": "validated",
			"notes":  "ok",
		})
		testutil.SetIdentity(c, testAdmin)
		testutil.SetURLParam(c, "id", "sup_1")
		testutil.SetURLParam(c, "document_id", "doc_1")

		h.Review(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("supplier reviewers are forbidden", func(t *testing.T) {
		svc := &mockDocumentService{
			reviewFn: func(context.Context, *authorization.Identity, string, string, dto.ReviewDocumentRequest) (*dto.DocumentDTO, error) {
				return nil, errors.NewForbiddenError("only admins can review documents")
			},
		}
		h := NewDocumentHandler(svc, 0, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPatch, "/suppliers/sup_1/documents/doc_1", map[string]string{
			"status": "validated",
		})
		testutil.SetIdentity(c, testSupplier)
		testutil.SetURLParam(c, "id", "sup_1")
		testutil.SetURLParam(c, "document_id", "doc_1")

		h.Review(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("document id must carry its prefix", func(t *testing.T) {
		h := NewDocumentHandler(&mockDocumentService{}, 0, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPatch, "/suppliers/sup_1/documents/ctr_1", map[string]string{
			"status": "validated",
		})
		testutil.SetIdentity(c, testAdmin)
		testutil.SetURLParam(c, "id", "sup_1")
		testutil.SetURLParam(c, "document_id", "ctr_1")

		h.Review(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
