package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-finance/prism/internal/application/contract/dto"
	vo "github.com/prism-finance/prism/internal/domain/contract/valueobjects"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/shared/authorization"
	apperrors "github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

func TestGetContract_Access(t *testing.T) {
	sup := newTestSupplier(t, companyID)
	otherSup := newTestSupplier(t, companyID)
	c := newDraftContract(t, sup)
	uc := NewGetContractUseCase(newMemContractRepository(c), newMockBlobStore(), logger.NewDiscard())

	tests := []struct {
		name     string
		identity *authorization.Identity
		check    func(error) bool
	}{
		{"company admin", adminIdentity(companyID), nil},
		{"super admin", superAdminIdentity(), nil},
		{"own supplier user", supplierIdentity(sup), nil},
		{"admin of another company", adminIdentity("cmp_othertenant01"), apperrors.IsForbiddenError},
		{"user of another supplier", supplierIdentity(otherSup), apperrors.IsForbiddenError},
		{"anonymous", nil, apperrors.IsForbiddenError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := uc.Execute(context.Background(), tt.identity, c.ID())
			if tt.check == nil {
				require.NoError(t, err)
				assert.Equal(t, c.ID(), got.ID)
				return
			}
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}

	_, err := uc.Execute(context.Background(), superAdminIdentity(), "ctr_missing")
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestGetContract_HTMLAndFile(t *testing.T) {
	sup := newTestSupplier(t, companyID)
	c := newDraftContract(t, sup)
	store := newMockBlobStore()
	uc := NewGetContractUseCase(newMemContractRepository(c), store, logger.NewDiscard())

	body, err := uc.HTML(context.Background(), supplierIdentity(sup), c.ID())
	require.NoError(t, err)
	assert.Equal(t, "<p>Acme</p>", body)

	_, err = uc.File(context.Background(), supplierIdentity(sup), c.ID())
	assert.True(t, apperrors.IsUpstreamError(err))

	store.blobs[c.FilePath()] = []byte("<p>Acme</p>")
	file, err := uc.File(context.Background(), supplierIdentity(sup), c.ID())
	require.NoError(t, err)
	assert.Equal(t, "<p>Acme</p>", string(file.Data))
	assert.Equal(t, c.ID()+".html", file.FileName)
}

func TestListContracts_SupplierIsScopedToOwnContracts(t *testing.T) {
	sup := newTestSupplier(t, companyID)
	otherSup := newTestSupplier(t, companyID)
	foreign := newTestSupplier(t, "cmp_othertenant01")
	repo := newMemContractRepository(
		newDraftContract(t, sup),
		newDraftContract(t, otherSup),
		newDraftContract(t, foreign),
	)
	uc := NewListContractsUseCase(repo, logger.NewDiscard())

	resp, err := uc.Execute(context.Background(), supplierIdentity(sup), dto.ListContractsRequest{SupplierID: otherSup.ID()})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, sup.ID(), resp.Items[0].SupplierID)

	resp, err = uc.Execute(context.Background(), adminIdentity(companyID), dto.ListContractsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)

	resp, err = uc.Execute(context.Background(), superAdminIdentity(), dto.ListContractsRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)

	_, err = uc.Execute(context.Background(), adminIdentity(companyID), dto.ListContractsRequest{Status: "bogus"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestCancelContract(t *testing.T) {
	sup := newTestSupplier(t, companyID)
	c := newDraftContract(t, sup)
	repo := newMemContractRepository(c)
	notifier := &recordingNotifier{}
	uc := NewCancelContractUseCase(repo, notifier, logger.NewDiscard())

	_, err := uc.Execute(context.Background(), supplierIdentity(sup), c.ID())
	assert.True(t, apperrors.IsForbiddenError(err))

	got, err := uc.Execute(context.Background(), adminIdentity(companyID), c.ID())
	require.NoError(t, err)
	assert.Equal(t, "cancelled", got.Status)
	assert.Equal(t, []notification.Type{notification.TypeContractCancelled}, notifier.types())

	_, err = uc.Execute(context.Background(), adminIdentity(companyID), c.ID())
	assert.True(t, apperrors.IsConflictError(err))
}

func TestExpireContracts(t *testing.T) {
	sup := newTestSupplier(t, companyID)
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(24 * time.Hour)

	stale := contractInStatus(t, sup, vo.StatusDraft, &past)
	halfSigned := contractInStatus(t, sup, vo.StatusAdminSigned, &past)
	current := contractInStatus(t, sup, vo.StatusDraft, &future)
	done := contractInStatus(t, sup, vo.StatusSigned, &past)
	repo := newMemContractRepository(stale, halfSigned, current, done)
	notifier := &recordingNotifier{}

	count, err := NewExpireContractsUseCase(repo, notifier, 0, logger.NewDiscard()).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, vo.StatusExpired, repo.get(stale.ID()).Status())
	assert.Equal(t, vo.StatusExpired, repo.get(halfSigned.ID()).Status())
	assert.Equal(t, vo.StatusDraft, repo.get(current.ID()).Status())
	assert.Equal(t, vo.StatusSigned, repo.get(done.ID()).Status())
	assert.Len(t, notifier.events, 2)
	for _, evt := range notifier.events {
		assert.Equal(t, notification.TypeContractExpired, evt.Type)
		assert.Equal(t, companyID, evt.Audience.AdminsOfCompany)
		assert.Equal(t, sup.ID(), evt.Audience.UsersOfSupplier)
	}
}
