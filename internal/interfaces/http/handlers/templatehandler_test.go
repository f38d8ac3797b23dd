package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-finance/prism/internal/application/template/dto"
	"github.com/prism-finance/prism/internal/interfaces/http/handlers/testutil"
	"github.com/prism-finance/prism/internal/shared/authorization"
)

type mockTemplateService struct {
	uploadFn   func(ctx context.Context, identity *authorization.Identity, req dto.UploadTemplateRequest) (*dto.TemplateDTO, error)
	updateFn   func(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateTemplateRequest) (*dto.TemplateDTO, error)
	deleteFn   func(ctx context.Context, identity *authorization.Identity, id string) error
	getFn      func(ctx context.Context, identity *authorization.Identity, id string) (*dto.TemplateDTO, error)
	downloadFn func(ctx context.Context, identity *authorization.Identity, id string) (*dto.TemplateFile, error)
	listFn     func(ctx context.Context, identity *authorization.Identity, req dto.ListTemplatesRequest) (*dto.ListTemplatesResponse, error)
}

func (m *mockTemplateService) Upload(ctx context.Context, identity *authorization.Identity, req dto.UploadTemplateRequest) (*dto.TemplateDTO, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, identity, req)
	}
	return &dto.TemplateDTO{}, nil
}

func (m *mockTemplateService) Update(ctx context.Context, identity *authorization.Identity, id string, req dto.UpdateTemplateRequest) (*dto.TemplateDTO, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, identity, id, req)
	}
	return &dto.TemplateDTO{}, nil
}

func (m *mockTemplateService) Delete(ctx context.Context, identity *authorization.Identity, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, identity, id)
	}
	return nil
}

func (m *mockTemplateService) Get(ctx context.Context, identity *authorization.Identity, id string) (*dto.TemplateDTO, error) {
	if m.getFn != nil {
		return m.getFn(ctx, identity, id)
	}
	return &dto.TemplateDTO{}, nil
}

func (m *mockTemplateService) Download(ctx context.Context, identity *authorization.Identity, id string) (*dto.TemplateFile, error) {
	if m.downloadFn != nil {
		return m.downloadFn(ctx, identity, id)
	}
	return &dto.TemplateFile{}, nil
}

func (m *mockTemplateService) List(ctx context.Context, identity *authorization.Identity, req dto.ListTemplatesRequest) (*dto.ListTemplatesResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx, identity, req)
	}
	return &dto.ListTemplatesResponse{Items: []*dto.TemplateDTO{}}, nil
}

func TestTemplateHandler_Upload(t *testing.T) {
	t.Run("reads the multipart form", func(t *testing.T) {
		var got dto.UploadTemplateRequest
		svc := &mockTemplateService{
			uploadFn: func(_ context.Context, _ *authorization.Identity, req dto.UploadTemplateRequest) (*dto.TemplateDTO, error) {
				got = req
				return &dto.TemplateDTO{ID: "tpl_1", Variables: []string{"SupplierName"}}, nil
			},
		}
		h := NewTemplateHandler(svc, 0, testutil.NewMockLogger())
		c, w := testutil.NewMultipartContext(http.MethodPost, "/templates", map[string]string{
			"name":            "NDA",
			"description":     "Standard NDA",
			"validity_period": "365",
		}, "file", "nda.md", []byte("Hello {{SupplierName}}"))
		testutil.SetIdentity(c, testAdmin)

		h.Upload(c)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "NDA", got.Name)
		assert.Equal(t, "nda.md", got.File.FileName)
		assert.Equal(t, "Hello {{SupplierName}}", string(got.File.Data))
		require.NotNil(t, got.ValidityPeriodDays)
		assert.Equal(t, 365, *got.ValidityPeriodDays)
	})

	t.Run("missing file is rejected", func(t *testing.T) {
		h := NewTemplateHandler(&mockTemplateService{}, 0, testutil.NewMockLogger())
		c, w := testutil.NewMultipartContext(http.MethodPost, "/templates", map[string]string{"name": "NDA"}, "", "", nil)
		testutil.SetIdentity(c, testAdmin)

		h.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("oversized file is rejected", func(t *testing.T) {
		h := NewTemplateHandler(&mockTemplateService{}, 4, testutil.NewMockLogger())
		c, w := testutil.NewMultipartContext(http.MethodPost, "/templates", nil, "file", "big.txt", []byte("0123456789"))
		testutil.SetIdentity(c, testAdmin)

		h.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non numeric validity is rejected", func(t *testing.T) {
		h := NewTemplateHandler(&mockTemplateService{}, 0, testutil.NewMockLogger())
		c, w := testutil.NewMultipartContext(http.MethodPost, "/templates", map[string]string{
			"validity_period": "a year",
		}, "file", "nda.md", []byte("x"))
		testutil.SetIdentity(c, testAdmin)

		h.Upload(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTemplateHandler_Update(t *testing.T) {
	t.Run("empty validity clears it and the file is optional", func(t *testing.T) {
		var got dto.UpdateTemplateRequest
		svc := &mockTemplateService{
			updateFn: func(_ context.Context, _ *authorization.Identity, id string, req dto.UpdateTemplateRequest) (*dto.TemplateDTO, error) {
				assert.Equal(t, "tpl_1", id)
				got = req
				return &dto.TemplateDTO{ID: id}, nil
			},
		}
		h := NewTemplateHandler(svc, 0, testutil.NewMockLogger())
		c, w := testutil.NewMultipartContext(http.MethodPut, "/templates/tpl_1", map[string]string{
			"name":            "Renamed",
			"validity_period": "",
		}, "", "", nil)
		testutil.SetIdentity(c, testAdmin)
		testutil.SetURLParam(c, "id", "tpl_1")

		h.Update(c)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got.Name)
		assert.Equal(t, "Renamed", *got.Name)
		assert.Nil(t, got.Description)
		assert.True(t, got.ClearValidity)
		assert.Nil(t, got.File)
	})

	t.Run("replacement file is forwarded", func(t *testing.T) {
		var got dto.UpdateTemplateRequest
		svc := &mockTemplateService{
			updateFn: func(_ context.Context, _ *authorization.Identity, id string, req dto.UpdateTemplateRequest) (*dto.TemplateDTO, error) {
				got = req
				return &dto.TemplateDTO{ID: id}, nil
			},
		}
		h := NewTemplateHandler(svc, 0, testutil.NewMockLogger())
		c, w := testutil.NewMultipartContext(http.MethodPut, "/templates/tpl_1", nil, "file", "v2.txt", []byte("{{IBAN}}"))
		testutil.SetIdentity(c, testAdmin)
		testutil.SetURLParam(c, "id", "tpl_1")

		h.Update(c)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got.File)
		assert.Equal(t, "v2.txt", got.File.FileName)
		assert.False(t, got.ClearValidity)
	})
}

func TestTemplateHandler_Download(t *testing.T) {
	svc := &mockTemplateService{
		downloadFn: func(context.Context, *authorization.Identity, string) (*dto.TemplateFile, error) {
			return &dto.TemplateFile{FileName: "nda.md", Data: []byte("# NDA")}, nil
		},
	}
	h := NewTemplateHandler(svc, 0, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/templates/tpl_1/download", nil)
	testutil.SetIdentity(c, testAdmin)
	testutil.SetURLParam(c, "id", "tpl_1")

	h.Download(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "# NDA", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename=nda.md`)
}
