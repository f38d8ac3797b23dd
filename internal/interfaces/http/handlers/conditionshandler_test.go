package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-finance/prism/internal/application/generalconditions/dto"
	"github.com/prism-finance/prism/internal/interfaces/http/handlers/testutil"
	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/errors"
)

type mockConditionsService struct {
	listFn             func(ctx context.Context, identity *authorization.Identity, req dto.ListConditionsRequest) ([]*dto.ConditionsDTO, error)
	deleteFn           func(ctx context.Context, identity *authorization.Identity, id string) error
	acceptanceStatusFn func(ctx context.Context, identity *authorization.Identity, supplierID string) (*dto.AcceptanceStatusDTO, error)
	acceptFn           func(ctx context.Context, identity *authorization.Identity, supplierID, ipAddress string, req dto.AcceptConditionsRequest) (*dto.AcceptanceDTO, error)
}

func (m *mockConditionsService) Create(context.Context, *authorization.Identity, dto.CreateConditionsRequest) (*dto.ConditionsDTO, error) {
	return &dto.ConditionsDTO{}, nil
}

func (m *mockConditionsService) Update(context.Context, *authorization.Identity, string, dto.UpdateConditionsRequest) (*dto.ConditionsDTO, error) {
	return &dto.ConditionsDTO{}, nil
}

func (m *mockConditionsService) Delete(ctx context.Context, identity *authorization.Identity, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, identity, id)
	}
	return nil
}

func (m *mockConditionsService) Get(_ context.Context, _ *authorization.Identity, id string) (*dto.ConditionsDTO, error) {
	return &dto.ConditionsDTO{ID: id}, nil
}

func (m *mockConditionsService) Active(context.Context, *authorization.Identity, string) (*dto.ConditionsDTO, error) {
	return &dto.ConditionsDTO{}, nil
}

func (m *mockConditionsService) HTML(context.Context, *authorization.Identity, string) (string, error) {
	return "<h1>Terms</h1>", nil
}

func (m *mockConditionsService) List(ctx context.Context, identity *authorization.Identity, req dto.ListConditionsRequest) ([]*dto.ConditionsDTO, error) {
	if m.listFn != nil {
		return m.listFn(ctx, identity, req)
	}
	return nil, nil
}

func (m *mockConditionsService) Acceptances(context.Context, *authorization.Identity, string) ([]*dto.AcceptanceDTO, error) {
	return nil, nil
}

func (m *mockConditionsService) AcceptanceStatus(ctx context.Context, identity *authorization.Identity, supplierID string) (*dto.AcceptanceStatusDTO, error) {
	if m.acceptanceStatusFn != nil {
		return m.acceptanceStatusFn(ctx, identity, supplierID)
	}
	return &dto.AcceptanceStatusDTO{}, nil
}

func (m *mockConditionsService) Accept(ctx context.Context, identity *authorization.Identity, supplierID, ipAddress string, req dto.AcceptConditionsRequest) (*dto.AcceptanceDTO, error) {
	if m.acceptFn != nil {
		return m.acceptFn(ctx, identity, supplierID, ipAddress, req)
	}
	return &dto.AcceptanceDTO{}, nil
}

func TestConditionsHandler_Accept(t *testing.T) {
	t.Run("records the caller address", func(t *testing.T) {
		var gotSupplier, gotIP, gotConditions string
		svc := &mockConditionsService{
			acceptFn: func(_ context.Context, _ *authorization.Identity, supplierID, ipAddress string, req dto.AcceptConditionsRequest) (*dto.AcceptanceDTO, error) {
				gotSupplier, gotIP, gotConditions = supplierID, ipAddress, req.ConditionsID
				return &dto.AcceptanceDTO{ID: "gca_1", ConditionsID: req.ConditionsID, SupplierID: supplierID, IPAddress: ipAddress}, nil
			},
		}
		h := NewConditionsHandler(svc, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPost, "/suppliers/sup_1/accept-gc", map[string]string{
			"conditions_id": "gcd_1",
		})
		testutil.SetIdentity(c, testSupplier)
		testutil.SetURLParam(c, "id", "sup_1")

		h.Accept(c)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sup_1", gotSupplier)
		assert.Equal(t, "gcd_1", gotConditions)
		assert.Equal(t, "192.0.2.1", gotIP)
	})

	t.Run("conditions id is required", func(t *testing.T) {
		h := NewConditionsHandler(&mockConditionsService{}, testutil.NewMockLogger())
		c, w := testutil.NewTestContext(http.MethodPost, "/suppliers/sup_1/accept-gc", map[string]string{})
		testutil.SetIdentity(c, testSupplier)
		testutil.SetURLParam(c, "id", "sup_1")

		h.Accept(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestConditionsHandler_AcceptanceStatus(t *testing.T) {
	svc := &mockConditionsService{
		acceptanceStatusFn: func(_ context.Context, _ *authorization.Identity, supplierID string) (*dto.AcceptanceStatusDTO, error) {
			assert.Equal(t, "sup_1", supplierID)
			return &dto.AcceptanceStatusDTO{Accepted: true, ConditionsID: "gcd_1", Version: "v2"}, nil
		},
	}
	h := NewConditionsHandler(svc, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/suppliers/sup_1/gc-status", nil)
	testutil.SetIdentity(c, testSupplier)
	testutil.SetURLParam(c, "id", "sup_1")

	h.AcceptanceStatus(c)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data dto.AcceptanceStatusDTO `json:"data"`
	}
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Data.Accepted)
	assert.Equal(t, "v2", resp.Data.Version)
}

func TestConditionsHandler_List(t *testing.T) {
	var got dto.ListConditionsRequest
	svc := &mockConditionsService{
		listFn: func(_ context.Context, _ *authorization.Identity, req dto.ListConditionsRequest) ([]*dto.ConditionsDTO, error) {
			got = req
			return nil, nil
		},
	}
	h := NewConditionsHandler(svc, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodGet, "/general-conditions", nil)
	testutil.SetIdentity(c, testAdmin)
	testutil.SetQueryParams(c, map[string]string{"active_only": "true"})

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, got.ActiveOnly)
}

func TestConditionsHandler_DeleteAccepted(t *testing.T) {
	svc := &mockConditionsService{
		deleteFn: func(context.Context, *authorization.Identity, string) error {
			return errors.NewConflictError("general conditions already accepted by suppliers")
		},
	}
	h := NewConditionsHandler(svc, testutil.NewMockLogger())
	c, w := testutil.NewTestContext(http.MethodDelete, "/general-conditions/gcd_1", nil)
	testutil.SetIdentity(c, testAdmin)
	testutil.SetURLParam(c, "id", "gcd_1")

	h.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
