package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	vo "github.com/prism-finance/prism/internal/domain/shared/valueobjects"
	"github.com/prism-finance/prism/internal/shared/id"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusPaid     Status = "paid"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusPaid:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

var (
	ErrInvalidStatus  = errors.New("invalid invoice status")
	ErrAlreadyPaid    = errors.New("invoice has already been paid")
	ErrInvalidAmount  = errors.New("invoice amount must be positive")
	ErrDueDateMissing = errors.New("invoice due date is required")
)

// Invoice is a bill a supplier uploads against its client company,
// optionally referencing one of the company's purchase orders.
type Invoice struct {
	id              string
	companyID       string
	supplierID      string
	purchaseOrderID string
	number          string
	amount          vo.Money
	dueDate         time.Time
	status          Status
	notes           string
	fileName        string
	filePath        string
	paymentDate     *time.Time
	approvedBy      string
	approvedAt      *time.Time
	uploadedBy      string
	createdAt       time.Time
	updatedAt       time.Time
}

type NewInvoiceParams struct {
	CompanyID       string
	SupplierID      string
	PurchaseOrderID string
	Number          string
	Amount          vo.Money
	DueDate         time.Time
	Notes           string
	FileName        string
	FilePath        string
	UploadedBy      string
	Now             time.Time
}

func NewInvoice(p NewInvoiceParams) (*Invoice, error) {
	if p.CompanyID == "" || p.SupplierID == "" {
		return nil, fmt.Errorf("company and supplier are required")
	}
	if p.FilePath == "" {
		return nil, fmt.Errorf("file path is required")
	}
	if !p.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if p.DueDate.IsZero() {
		return nil, ErrDueDateMissing
	}

	invID, err := id.NewInvoiceID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice ID: %w", err)
	}

	return &Invoice{
		id:              invID,
		companyID:       p.CompanyID,
		supplierID:      p.SupplierID,
		purchaseOrderID: p.PurchaseOrderID,
		number:          strings.TrimSpace(p.Number),
		amount:          p.Amount,
		dueDate:         p.DueDate.UTC(),
		status:          StatusPending,
		notes:           strings.TrimSpace(p.Notes),
		fileName:        p.FileName,
		filePath:        p.FilePath,
		uploadedBy:      p.UploadedBy,
		createdAt:       p.Now.UTC(),
		updatedAt:       p.Now.UTC(),
	}, nil
}

type ReconstructParams struct {
	ID              string
	CompanyID       string
	SupplierID      string
	PurchaseOrderID string
	Number          string
	Amount          vo.Money
	DueDate         time.Time
	Status          Status
	Notes           string
	FileName        string
	FilePath        string
	PaymentDate     *time.Time
	ApprovedBy      string
	ApprovedAt      *time.Time
	UploadedBy      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructInvoice(p ReconstructParams) (*Invoice, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("invoice ID cannot be empty")
	}
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Invoice{
		id:              p.ID,
		companyID:       p.CompanyID,
		supplierID:      p.SupplierID,
		purchaseOrderID: p.PurchaseOrderID,
		number:          p.Number,
		amount:          p.Amount,
		dueDate:         p.DueDate,
		status:          p.Status,
		notes:           p.Notes,
		fileName:        p.FileName,
		filePath:        p.FilePath,
		paymentDate:     p.PaymentDate,
		approvedBy:      p.ApprovedBy,
		approvedAt:      p.ApprovedAt,
		uploadedBy:      p.UploadedBy,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

func (i *Invoice) ID() string              { return i.id }
func (i *Invoice) CompanyID() string       { return i.companyID }
func (i *Invoice) SupplierID() string      { return i.supplierID }
func (i *Invoice) PurchaseOrderID() string { return i.purchaseOrderID }
func (i *Invoice) Number() string          { return i.number }
func (i *Invoice) Amount() vo.Money        { return i.amount }
func (i *Invoice) DueDate() time.Time      { return i.dueDate }
func (i *Invoice) Status() Status          { return i.status }
func (i *Invoice) Notes() string           { return i.notes }
func (i *Invoice) FileName() string        { return i.fileName }
func (i *Invoice) FilePath() string        { return i.filePath }
func (i *Invoice) PaymentDate() *time.Time { return i.paymentDate }
func (i *Invoice) ApprovedBy() string      { return i.approvedBy }
func (i *Invoice) ApprovedAt() *time.Time  { return i.approvedAt }
func (i *Invoice) UploadedBy() string      { return i.uploadedBy }
func (i *Invoice) CreatedAt() time.Time    { return i.createdAt }
func (i *Invoice) UpdatedAt() time.Time    { return i.updatedAt }

// Label is the display text for the current status.
func (i *Invoice) Label() string {
	switch i.status {
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	case StatusPaid:
		return "Paid"
	}
	return "Pending review"
}

// Deletable reports whether the uploading supplier may still withdraw it.
func (i *Invoice) Deletable() bool {
	return i.status == StatusPending
}

type StatusChange struct {
	Status      Status
	Notes       *string
	PaymentDate *time.Time
	ReviewerID  string
}

// ChangeStatus records an admin decision. Approving or paying stamps the
// reviewer; paying also stamps the payment date, defaulting to now. Paid
// invoices are final.
func (i *Invoice) ChangeStatus(c StatusChange, now time.Time) error {
	if !c.Status.IsValid() {
		return ErrInvalidStatus
	}
	if i.status == StatusPaid {
		return ErrAlreadyPaid
	}
	at := now.UTC()
	i.status = c.Status
	if c.Notes != nil {
		i.notes = strings.TrimSpace(*c.Notes)
	}
	switch c.Status {
	case StatusApproved, StatusPaid:
		i.approvedBy = c.ReviewerID
		i.approvedAt = &at
	default:
		i.approvedBy = ""
		i.approvedAt = nil
	}
	if c.Status == StatusPaid {
		paid := at
		if c.PaymentDate != nil {
			paid = c.PaymentDate.UTC()
		}
		i.paymentDate = &paid
	}
	i.updatedAt = at
	return nil
}
