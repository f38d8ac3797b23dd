package purchaseorder

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	vo "github.com/prism-finance/prism/internal/domain/shared/valueobjects"
	"github.com/prism-finance/prism/internal/shared/id"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusSigned    Status = "signed"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusSigned, StatusCancelled:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

var (
	ErrInvalidStatus          = errors.New("invalid purchase order status")
	ErrInvalidTransition      = errors.New("invalid purchase order status transition")
	ErrNotEditable            = errors.New("only draft purchase orders can be edited")
	ErrSignatureNotRequired   = errors.New("purchase order does not require a signature")
	ErrNoItems                = errors.New("purchase order needs at least one item")
	ErrConcurrentModification = errors.New("purchase order was modified concurrently")
)

func invalidTransition(from Status, action string) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, action, from)
}

// Item is one order line. TaxRate is a percentage.
type Item struct {
	Description    string  `json:"description"`
	Quantity       float64 `json:"quantity"`
	UnitPriceCents int64   `json:"unit_price_cents"`
	TaxRate        float64 `json:"tax_rate"`
}

func (i Item) netCents() int64 {
	return int64(math.Round(i.Quantity * float64(i.UnitPriceCents)))
}

func (i Item) taxCents() int64 {
	return int64(math.Round(float64(i.netCents()) * i.TaxRate / 100))
}

func validateItems(items []Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	for n, it := range items {
		if strings.TrimSpace(it.Description) == "" {
			return fmt.Errorf("item %d: description is required", n+1)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be positive", n+1)
		}
		if it.UnitPriceCents < 0 {
			return fmt.Errorf("item %d: unit price cannot be negative", n+1)
		}
		if it.TaxRate < 0 || it.TaxRate > 100 {
			return fmt.Errorf("item %d: tax rate must be between 0 and 100", n+1)
		}
	}
	return nil
}

// PurchaseOrder is an order a company issues to one of its suppliers.
type PurchaseOrder struct {
	id               string
	companyID        string
	supplierID       string
	number           string
	items            []Item
	currency         string
	notes            string
	requireSignature bool
	dueDate          *time.Time
	status           Status
	sentAt           *time.Time
	signedAt         *time.Time
	signedBy         string
	cancelledAt      *time.Time
	createdBy        string
	createdAt        time.Time
	updatedAt        time.Time
}

type NewPurchaseOrderParams struct {
	CompanyID        string
	SupplierID       string
	Number           string
	Items            []Item
	Currency         string
	Notes            string
	RequireSignature bool
	DueDate          *time.Time
	CreatedBy        string
	Now              time.Time
}

func NewPurchaseOrder(p NewPurchaseOrderParams) (*PurchaseOrder, error) {
	if p.CompanyID == "" || p.SupplierID == "" {
		return nil, fmt.Errorf("company and supplier are required")
	}
	number := strings.TrimSpace(p.Number)
	if number == "" {
		return nil, fmt.Errorf("purchase order number is required")
	}
	if err := validateItems(p.Items); err != nil {
		return nil, err
	}

	poID, err := id.NewPurchaseOrderID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate purchase order ID: %w", err)
	}

	return &PurchaseOrder{
		id:               poID,
		companyID:        p.CompanyID,
		supplierID:       p.SupplierID,
		number:           number,
		items:            append([]Item(nil), p.Items...),
		currency:         vo.NewMoney(0, p.Currency).Currency(),
		notes:            strings.TrimSpace(p.Notes),
		requireSignature: p.RequireSignature,
		dueDate:          utcPtr(p.DueDate),
		status:           StatusDraft,
		createdBy:        p.CreatedBy,
		createdAt:        p.Now.UTC(),
		updatedAt:        p.Now.UTC(),
	}, nil
}

type ReconstructParams struct {
	ID               string
	CompanyID        string
	SupplierID       string
	Number           string
	Items            []Item
	Currency         string
	Notes            string
	RequireSignature bool
	DueDate          *time.Time
	Status           Status
	SentAt           *time.Time
	SignedAt         *time.Time
	SignedBy         string
	CancelledAt      *time.Time
	CreatedBy        string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func ReconstructPurchaseOrder(p ReconstructParams) (*PurchaseOrder, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("purchase order ID cannot be empty")
	}
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &PurchaseOrder{
		id:               p.ID,
		companyID:        p.CompanyID,
		supplierID:       p.SupplierID,
		number:           p.Number,
		items:            p.Items,
		currency:         vo.NewMoney(0, p.Currency).Currency(),
		notes:            p.Notes,
		requireSignature: p.RequireSignature,
		dueDate:          p.DueDate,
		status:           p.Status,
		sentAt:           p.SentAt,
		signedAt:         p.SignedAt,
		signedBy:         p.SignedBy,
		cancelledAt:      p.CancelledAt,
		createdBy:        p.CreatedBy,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}

func (o *PurchaseOrder) ID() string              { return o.id }
func (o *PurchaseOrder) CompanyID() string       { return o.companyID }
func (o *PurchaseOrder) SupplierID() string      { return o.supplierID }
func (o *PurchaseOrder) Number() string          { return o.number }
func (o *PurchaseOrder) Items() []Item           { return append([]Item(nil), o.items...) }
func (o *PurchaseOrder) Currency() string        { return o.currency }
func (o *PurchaseOrder) Notes() string           { return o.notes }
func (o *PurchaseOrder) RequireSignature() bool  { return o.requireSignature }
func (o *PurchaseOrder) DueDate() *time.Time     { return o.dueDate }
func (o *PurchaseOrder) Status() Status          { return o.status }
func (o *PurchaseOrder) SentAt() *time.Time      { return o.sentAt }
func (o *PurchaseOrder) SignedAt() *time.Time    { return o.signedAt }
func (o *PurchaseOrder) SignedBy() string        { return o.signedBy }
func (o *PurchaseOrder) CancelledAt() *time.Time { return o.cancelledAt }
func (o *PurchaseOrder) CreatedBy() string       { return o.createdBy }
func (o *PurchaseOrder) CreatedAt() time.Time    { return o.createdAt }
func (o *PurchaseOrder) UpdatedAt() time.Time    { return o.updatedAt }

func (o *PurchaseOrder) Subtotal() vo.Money {
	var cents int64
	for _, it := range o.items {
		cents += it.netCents()
	}
	return vo.NewMoney(cents, o.currency)
}

func (o *PurchaseOrder) TaxAmount() vo.Money {
	var cents int64
	for _, it := range o.items {
		cents += it.taxCents()
	}
	return vo.NewMoney(cents, o.currency)
}

func (o *PurchaseOrder) Total() vo.Money {
	return vo.NewMoney(o.Subtotal().AmountInCents()+o.TaxAmount().AmountInCents(), o.currency)
}

// Invoiceable reports whether invoices may reference this order: it has
// been sent and, when a signature is required, signed.
func (o *PurchaseOrder) Invoiceable() bool {
	switch o.status {
	case StatusSigned:
		return true
	case StatusSent:
		return !o.requireSignature
	}
	return false
}

type UpdateParams struct {
	Number           *string
	Items            []Item
	Currency         *string
	Notes            *string
	RequireSignature *bool
	DueDate          *time.Time
}

// Update edits a draft. Nil fields are left unchanged.
func (o *PurchaseOrder) Update(p UpdateParams, now time.Time) error {
	if o.status != StatusDraft {
		return ErrNotEditable
	}
	if p.Number != nil {
		number := strings.TrimSpace(*p.Number)
		if number == "" {
			return fmt.Errorf("purchase order number is required")
		}
		o.number = number
	}
	if p.Items != nil {
		if err := validateItems(p.Items); err != nil {
			return err
		}
		o.items = append([]Item(nil), p.Items...)
	}
	if p.Currency != nil {
		o.currency = vo.NewMoney(0, *p.Currency).Currency()
	}
	if p.Notes != nil {
		o.notes = strings.TrimSpace(*p.Notes)
	}
	if p.RequireSignature != nil {
		o.requireSignature = *p.RequireSignature
	}
	if p.DueDate != nil {
		o.dueDate = utcPtr(p.DueDate)
	}
	o.updatedAt = now.UTC()
	return nil
}

// Send issues a draft to the supplier.
func (o *PurchaseOrder) Send(now time.Time) error {
	if o.status != StatusDraft {
		return invalidTransition(o.status, "send")
	}
	at := now.UTC()
	o.status = StatusSent
	o.sentAt = &at
	o.updatedAt = at
	return nil
}

// Sign records the supplier's acceptance of a sent order.
func (o *PurchaseOrder) Sign(userID string, now time.Time) error {
	if !o.requireSignature {
		return ErrSignatureNotRequired
	}
	if o.status != StatusSent {
		return invalidTransition(o.status, "sign")
	}
	at := now.UTC()
	o.status = StatusSigned
	o.signedAt = &at
	o.signedBy = userID
	o.updatedAt = at
	return nil
}

// Cancel withdraws a draft or sent order. Signed orders stay binding.
func (o *PurchaseOrder) Cancel(now time.Time) error {
	if o.status != StatusDraft && o.status != StatusSent {
		return invalidTransition(o.status, "cancel")
	}
	at := now.UTC()
	o.status = StatusCancelled
	o.cancelledAt = &at
	o.updatedAt = at
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
