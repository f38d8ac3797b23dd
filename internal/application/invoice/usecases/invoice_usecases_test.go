package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-finance/prism/internal/application/invoice/dto"
	"github.com/prism-finance/prism/internal/domain/invoice"
	"github.com/prism-finance/prism/internal/domain/notification"
	"github.com/prism-finance/prism/internal/domain/purchaseorder"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/shared/authorization"
	apperrors "github.com/prism-finance/prism/internal/shared/errors"
	"github.com/prism-finance/prism/internal/shared/logger"
)

const invTenant = "cmp_invoicetest01"

type invoiceFixture struct {
	sup        *supplier.Supplier
	orders     orderSet
	conditions fixedConditions
	repo       *mockInvoiceRepository
	store      memBlobStore
	notifier   *recordingNotifier
	admin      *authorization.Identity
	owner      *authorization.Identity
}

func newInvoiceFixture(t *testing.T) *invoiceFixture {
	t.Helper()
	sup, err := supplier.NewSupplier(invTenant, supplier.Details{Name: "Acme", SIRET: "1"}, time.Now())
	require.NoError(t, err)
	return &invoiceFixture{
		sup:        sup,
		conditions: true,
		repo:       newMockInvoiceRepository(),
		store:      memBlobStore{},
		notifier:   &recordingNotifier{},
		admin:      &authorization.Identity{UserID: "usr_admin", Role: authorization.RoleAdmin, CompanyID: invTenant},
		owner:      &authorization.Identity{UserID: "usr_owner", Role: authorization.RoleSupplier, CompanyID: invTenant, SupplierID: sup.ID()},
	}
}

func (f *invoiceFixture) uploader() *UploadInvoiceUseCase {
	return NewUploadInvoiceUseCase(f.repo, supplierSet{f.sup}, f.orders, f.conditions, f.store, f.notifier, logger.NewDiscard())
}

func (f *invoiceFixture) request(number string) dto.UploadInvoiceRequest {
	return dto.UploadInvoiceRequest{
		SupplierID:  f.sup.ID(),
		Number:      number,
		AmountCents: 120000,
		DueDate:     time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		FileName:    "invoice march.pdf",
		Data:        []byte("%PDF"),
	}
}

func (f *invoiceFixture) upload(t *testing.T, identity *authorization.Identity, number string) *dto.InvoiceDTO {
	t.Helper()
	inv, err := f.uploader().Execute(context.Background(), identity, f.request(number))
	require.NoError(t, err)
	return inv
}

func (f *invoiceFixture) order(t *testing.T, requireSignature bool) *purchaseorder.PurchaseOrder {
	t.Helper()
	po, err := purchaseorder.NewPurchaseOrder(purchaseorder.NewPurchaseOrderParams{
		CompanyID:        invTenant,
		SupplierID:       f.sup.ID(),
		Number:           "PO-1",
		Items:            []purchaseorder.Item{{Description: "Audit", Quantity: 1, UnitPriceCents: 100000}},
		RequireSignature: requireSignature,
		CreatedBy:        "usr_admin",
		Now:              time.Now(),
	})
	require.NoError(t, err)
	f.orders = append(f.orders, po)
	return po
}

func TestUploadInvoice_BySupplierNotifiesAdmins(t *testing.T) {
	f := newInvoiceFixture(t)
	inv := f.upload(t, f.owner, "F-2026-001")

	assert.Equal(t, "pending", inv.Status)
	assert.Equal(t, "Pending review", inv.StatusLabel)
	assert.Equal(t, int64(120000), inv.AmountCents)
	assert.Equal(t, "EUR", inv.Currency)
	stored := f.repo.items[inv.ID]
	assert.Contains(t, f.store, stored.FilePath())
	assert.Contains(t, stored.FilePath(), "invoices/"+f.sup.ID()+"/")
	assert.Contains(t, stored.FilePath(), "invoice_march.pdf")

	require.Len(t, f.notifier.events, 1)
	evt := f.notifier.events[0]
	assert.Equal(t, notification.TypeInvoiceUploaded, evt.Type)
	assert.Equal(t, invTenant, evt.Audience.AdminsOfCompany)
	assert.Contains(t, evt.Message, "F-2026-001")
	assert.Contains(t, evt.Message, "1200.00 EUR")
}

func TestUploadInvoice_ByAdminIsSilent(t *testing.T) {
	f := newInvoiceFixture(t)
	f.conditions = false
	f.upload(t, f.admin, "")
	assert.Empty(t, f.notifier.events)
}

func TestUploadInvoice_Rejections(t *testing.T) {
	f := newInvoiceFixture(t)
	f.upload(t, f.owner, "F-1")

	_, err := f.uploader().Execute(context.Background(), f.owner, f.request("F-1"))
	assert.True(t, apperrors.IsConflictError(err))

	empty := f.request("F-2")
	empty.Data = nil
	_, err = f.uploader().Execute(context.Background(), f.owner, empty)
	assert.True(t, apperrors.IsValidationError(err))

	zero := f.request("F-3")
	zero.AmountCents = 0
	_, err = f.uploader().Execute(context.Background(), f.owner, zero)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Len(t, f.store, 1, "the file of a rejected upload is removed")

	intruder := &authorization.Identity{UserID: "usr_x", Role: authorization.RoleSupplier, CompanyID: invTenant, SupplierID: "sup_another0000001"}
	_, err = f.uploader().Execute(context.Background(), intruder, f.request("F-4"))
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestUploadInvoice_RequiresAcceptedConditions(t *testing.T) {
	f := newInvoiceFixture(t)
	f.conditions = false

	_, err := f.uploader().Execute(context.Background(), f.owner, f.request("F-1"))
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.Empty(t, f.store)
}

func TestUploadInvoice_PurchaseOrderChecks(t *testing.T) {
	f := newInvoiceFixture(t)

	req := f.request("F-1")
	req.PurchaseOrderID = "po_missing"
	_, err := f.uploader().Execute(context.Background(), f.owner, req)
	assert.True(t, apperrors.IsNotFoundError(err))

	po := f.order(t, true)
	req.PurchaseOrderID = po.ID()
	_, err = f.uploader().Execute(context.Background(), f.owner, req)
	assert.True(t, apperrors.IsValidationError(err), "draft orders cannot be invoiced")

	require.NoError(t, po.Send(time.Now()))
	_, err = f.uploader().Execute(context.Background(), f.owner, req)
	assert.True(t, apperrors.IsValidationError(err), "unsigned orders cannot be invoiced")

	require.NoError(t, po.Sign("usr_owner", time.Now()))
	inv, err := f.uploader().Execute(context.Background(), f.owner, req)
	require.NoError(t, err)
	assert.Equal(t, po.ID(), inv.PurchaseOrderID)

	other, err := supplier.NewSupplier(invTenant, supplier.Details{Name: "Other", SIRET: "2"}, time.Now())
	require.NoError(t, err)
	foreign, err := purchaseorder.NewPurchaseOrder(purchaseorder.NewPurchaseOrderParams{
		CompanyID:  invTenant,
		SupplierID: other.ID(),
		Number:     "PO-2",
		Items:      []purchaseorder.Item{{Description: "Audit", Quantity: 1}},
		Now:        time.Now(),
	})
	require.NoError(t, err)
	f.orders = append(f.orders, foreign)
	req = f.request("F-2")
	req.PurchaseOrderID = foreign.ID()
	_, err = f.uploader().Execute(context.Background(), f.owner, req)
	assert.True(t, apperrors.IsForbiddenError(err))
}

func TestUpdateInvoiceStatus(t *testing.T) {
	f := newInvoiceFixture(t)
	inv := f.upload(t, f.owner, "F-1")
	f.notifier.events = nil
	uc := NewUpdateInvoiceStatusUseCase(f.repo, f.notifier, logger.NewDiscard())

	_, err := uc.Execute(context.Background(), f.owner, inv.ID, dto.UpdateInvoiceStatusRequest{Status: "approved"})
	assert.True(t, apperrors.IsForbiddenError(err))

	approved, err := uc.Execute(context.Background(), f.admin, inv.ID, dto.UpdateInvoiceStatusRequest{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, "Approved", approved.StatusLabel)
	assert.Equal(t, "usr_admin", approved.ApprovedBy)
	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, notification.TypeInvoiceApproved, f.notifier.events[0].Type)
	assert.Equal(t, f.sup.ID(), f.notifier.events[0].Audience.UsersOfSupplier)

	paidOn := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	paid, err := uc.Execute(context.Background(), f.admin, inv.ID, dto.UpdateInvoiceStatusRequest{Status: "paid", PaymentDate: &paidOn})
	require.NoError(t, err)
	require.NotNil(t, paid.PaymentDate)
	assert.True(t, paid.PaymentDate.Equal(paidOn))
	assert.Equal(t, notification.TypeInvoicePaid, f.notifier.events[1].Type)

	_, err = uc.Execute(context.Background(), f.admin, inv.ID, dto.UpdateInvoiceStatusRequest{Status: "rejected"})
	assert.True(t, apperrors.IsConflictError(err))
	assert.Len(t, f.notifier.events, 2)
}

func TestUpdateInvoiceStatus_RejectionCarriesReason(t *testing.T) {
	f := newInvoiceFixture(t)
	inv := f.upload(t, f.admin, "F-1")
	reason := "wrong VAT rate"

	_, err := NewUpdateInvoiceStatusUseCase(f.repo, f.notifier, logger.NewDiscard()).
		Execute(context.Background(), f.admin, inv.ID, dto.UpdateInvoiceStatusRequest{Status: "rejected", Notes: &reason})
	require.NoError(t, err)

	require.Len(t, f.notifier.events, 1)
	assert.Equal(t, notification.TypeInvoiceRejected, f.notifier.events[0].Type)
	assert.Contains(t, f.notifier.events[0].Message, reason)
}

func TestDeleteInvoice(t *testing.T) {
	f := newInvoiceFixture(t)
	uc := NewDeleteInvoiceUseCase(f.repo, f.store, logger.NewDiscard())

	pending := f.upload(t, f.owner, "F-1")
	require.NoError(t, uc.Execute(context.Background(), f.owner, pending.ID))
	assert.Equal(t, []string{pending.ID}, f.repo.deleted)
	assert.Empty(t, f.store)

	approved := f.upload(t, f.owner, "F-2")
	require.NoError(t, f.repo.items[approved.ID].ChangeStatus(invoice.StatusChange{Status: invoice.StatusApproved}, time.Now()))

	err := uc.Execute(context.Background(), f.owner, approved.ID)
	assert.True(t, apperrors.IsForbiddenError(err))

	require.NoError(t, uc.Execute(context.Background(), f.admin, approved.ID))
	assert.Empty(t, f.repo.items)
}

func TestListInvoices_SupplierPinnedToOwnInvoices(t *testing.T) {
	f := newInvoiceFixture(t)
	f.upload(t, f.owner, "F-1")

	other, err := supplier.NewSupplier(invTenant, supplier.Details{Name: "Other", SIRET: "2"}, time.Now())
	require.NoError(t, err)
	f.sup = other
	f.upload(t, f.admin, "F-9")

	uc := NewListInvoicesUseCase(f.repo, logger.NewDiscard())

	all, err := uc.Execute(context.Background(), f.admin, dto.ListInvoicesRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), all.Total)

	own, err := uc.Execute(context.Background(), f.owner, dto.ListInvoicesRequest{SupplierID: other.ID()})
	require.NoError(t, err)
	require.Len(t, own.Items, 1)
	assert.Equal(t, "F-1", own.Items[0].Number)

	_, err = uc.Execute(context.Background(), f.admin, dto.ListInvoicesRequest{Status: "overdue"})
	assert.True(t, apperrors.IsValidationError(err))
}

func TestDownloadInvoice(t *testing.T) {
	f := newInvoiceFixture(t)
	inv := f.upload(t, f.owner, "F-1")

	file, err := NewGetInvoiceUseCase(f.repo, f.store, logger.NewDiscard()).Download(context.Background(), f.owner, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "invoice march.pdf", file.FileName)
	assert.Equal(t, []byte("%PDF"), file.Data)
}
