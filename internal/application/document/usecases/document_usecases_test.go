package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-finance/prism/internal/application/document/dto"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/shared/authorization"
	apperrors "github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

const docTenant = "cmp_documenttest1"

type documentFixture struct {
	sup      *supplier.Supplier
	repo     *mockDocumentRepository
	store    memBlobStore
	notifier *recordingNotifier
	admin    *authorization.Identity
	owner    *authorization.Identity
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()
	sup, err := supplier.NewSupplier(docTenant, supplier.Details{Name: "Acme", SIRET: "1"}, time.Now())
	require.NoError(t, err)
	return &documentFixture{
		sup:      sup,
		repo:     newMockDocumentRepository(),
		store:    memBlobStore{},
		notifier: &recordingNotifier{},
		admin:    &authorization.Identity{UserID: "usr_admin", Role: authorization.RoleAdmin, CompanyID: docTenant},
		owner:    &authorization.Identity{UserID: "usr_owner", Role: authorization.RoleSupplier, CompanyID: docTenant, SupplierID: sup.ID()},
	}
}

func (f *documentFixture) upload(t *testing.T, identity *authorization.Identity) *dto.DocumentDTO {
	t.Helper()
	uc := NewUploadDocumentUseCase(f.repo, supplierSet{f.sup}, f.store, f.notifier, logger.NewDiscard())
	doc, err := uc.Execute(context.Background(), identity, f.sup.ID(), dto.UploadDocumentRequest{
		Category: "kbis",
		FileName: "kbis 2026.pdf",
		Data:     []byte("%PDF"),
	})
	require.NoError(t, err)
	return doc
}

func TestUploadDocument_BySupplierNotifiesAdmins(t *testing.T) {
	f := newDocumentFixture(t)
	doc := f.upload(t, f.owner)

	assert.Equal(t, "pending", doc.Status)
	assert.Equal(t, "kbis 2026.pdf", doc.Name)
	stored := f.repo.items[doc.ID]
	assert.Contains(t, f.store, stored.FilePath())
	assert.Contains(t, stored.FilePath(), "kbis_2026.pdf")

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, notification.TypeDocumentUploaded, f.notifier.events[0].Type)
	assert.Equal(t, docTenant, f.notifier.events[0].Audience.AdminsOfCompany)
}

func TestUploadDocument_ByAdminIsSilent(t *testing.T) {
	f := newDocumentFixture(t)
	f.upload(t, f.admin)
	assert.Empty(t, f.notifier.events)
}

func TestUploadDocument_OtherSupplierForbidden(t *testing.T) {
	f := newDocumentFixture(t)
	intruder := &authorization.Identity{UserID: "usr_x", Role: authorization.RoleSupplier, CompanyID: docTenant, SupplierID: "sup_another0000001"}

	uc := NewUploadDocumentUseCase(f.repo, supplierSet{f.sup}, f.store, f.notifier, logger.NewDiscard())
	_, err := uc.Execute(context.Background(), intruder, f.sup.ID(), dto.UploadDocumentRequest{FileName: "a.pdf", Data: []byte("x")})
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.Empty(t, f.repo.items)
}

func TestReviewDocument(t *testing.T) {
	f := newDocumentFixture(t)
	doc := f.upload(t, f.owner)
	f.notifier.events = nil
	uc := NewReviewDocumentUseCase(f.repo, supplierSet{f.sup}, f.notifier, logger.NewDiscard())

	_, err := uc.Execute(context.Background(), f.owner, f.sup.ID(), doc.ID, dto.ReviewDocumentRequest{Status: "validated"})
	assert.True(t, apperrors.IsForbiddenError(err))

	rejected, err := uc.Execute(context.Background(), f.admin, f.sup.ID(), doc.ID, dto.ReviewDocumentRequest{Status: "rejected", Notes: "expired"})
	require.NoError(t, err)
	assert.Equal(t, "rejected", rejected.Status)
	assert.Equal(t, "usr_admin", rejected.ValidatedBy)
	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, notification.TypeDocumentRejected, f.notifier.events[0].Type)
	assert.Contains(t, f.notifier.events[0].Message, "expired")
	assert.Equal(t, f.sup.ID(), f.notifier.events[0].Audience.UsersOfSupplier)

	pending, err := uc.Execute(context.Background(), f.admin, f.sup.ID(), doc.ID, dto.ReviewDocumentRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Empty(t, pending.ValidatedBy)
	assert.Len(t, f.notifier.events, 1)

	_, err = uc.Execute(context.Background(), f.admin, f.sup.ID(), doc.ID, dto.ReviewDocumentRequest{Status: "archived"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestGetListDownloadDelete(t *testing.T) {
	f := newDocumentFixture(t)
	doc := f.upload(t, f.owner)

	get := NewGetDocumentUseCase(f.repo, supplierSet{f.sup}, f.store, logger.NewDiscard())
	got, err := get.Execute(context.Background(), f.owner, f.sup.ID(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, got.ID)

	_, err = get.Execute(context.Background(), f.owner, f.sup.ID(), "doc_missing")
	assert.True(t, apperrors.IsNotFoundError(err))

	file, err := get.Download(context.Background(), f.admin, f.sup.ID(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), file.Data)

	list := NewListDocumentsUseCase(f.repo, supplierSet{f.sup}, logger.NewDiscard())
	resp, err := list.Execute(context.Background(), f.admin, f.sup.ID(), dto.ListDocumentsRequest{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)

	del := NewDeleteDocumentUseCase(f.repo, supplierSet{f.sup}, f.store, logger.NewDiscard())
	assert.True(t, apperrors.IsForbiddenError(del.Execute(context.Background(), f.owner, f.sup.ID(), doc.ID)))
	require.NoError(t, del.Execute(context.Background(), f.admin, f.sup.ID(), doc.ID))
	assert.Empty(t, f.repo.items)
	assert.Empty(t, f.store)
}
