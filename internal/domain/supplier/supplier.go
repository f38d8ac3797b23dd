package supplier

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/prism-finance/prism/internal/shared/id"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Supplier is a tenant's counterpart. ContractVariables holds per-supplier
// defaults that override the canonical fields when contracts are rendered.
type Supplier struct {
	id                string
	companyID         string
	name              string
	siret             string
	vatNumber         string
	profession        string
	address           string
	postalCode        string
	city              string
	country           string
	iban              string
	bic               string
	emails            []string
	phone             string
	status            Status
	contractVariables map[string]any
	createdAt         time.Time
	updatedAt         time.Time
}

// Details carries the editable legal and contact fields.
type Details struct {
	Name              string
	SIRET             string
	VATNumber         string
	Profession        string
	Address           string
	PostalCode        string
	City              string
	Country           string
	IBAN              string
	BIC               string
	Emails            []string
	Phone             string
	ContractVariables map[string]any
}

func NewSupplier(companyID string, d Details, now time.Time) (*Supplier, error) {
	if companyID == "" {
		return nil, fmt.Errorf("company ID is required")
	}
	if err := d.validate(); err != nil {
		return nil, err
	}

	supplierID, err := id.NewSupplierID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate supplier ID: %w", err)
	}

	s := &Supplier{
		id:        supplierID,
		companyID: companyID,
		status:    StatusActive,
		createdAt: now.UTC(),
		updatedAt: now.UTC(),
	}
	s.apply(d)
	return s, nil
}

type ReconstructParams struct {
	ID        string
	CompanyID string
	Details   Details
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func ReconstructSupplier(p ReconstructParams) (*Supplier, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("supplier ID cannot be empty")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid supplier status: %s", p.Status)
	}
	s := &Supplier{
		id:        p.ID,
		companyID: p.CompanyID,
		status:    p.Status,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}
	s.apply(p.Details)
	return s, nil
}

func (s *Supplier) ID() string         { return s.id }
func (s *Supplier) CompanyID() string  { return s.companyID }
func (s *Supplier) Name() string       { return s.name }
func (s *Supplier) SIRET() string      { return s.siret }
func (s *Supplier) VATNumber() string  { return s.vatNumber }
func (s *Supplier) Profession() string { return s.profession }
func (s *Supplier) Address() string    { return s.address }
func (s *Supplier) PostalCode() string { return s.postalCode }
func (s *Supplier) City() string       { return s.city }
func (s *Supplier) Country() string    { return s.country }
func (s *Supplier) IBAN() string       { return s.iban }
func (s *Supplier) BIC() string        { return s.bic }
func (s *Supplier) Phone() string      { return s.phone }
func (s *Supplier) Status() Status     { return s.status }
func (s *Supplier) CreatedAt() time.Time {
	return s.createdAt
}
func (s *Supplier) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Supplier) Emails() []string {
	out := make([]string, len(s.emails))
	copy(out, s.emails)
	return out
}

// PrimaryEmail is the first registered email, or "".
func (s *Supplier) PrimaryEmail() string {
	if len(s.emails) == 0 {
		return ""
	}
	return s.emails[0]
}

func (s *Supplier) ContractVariables() map[string]any {
	out := make(map[string]any, len(s.contractVariables))
	for k, v := range s.contractVariables {
		out[k] = v
	}
	return out
}

// Details returns the editable fields as they currently stand.
func (s *Supplier) Details() Details {
	return Details{
		Name:              s.name,
		SIRET:             s.siret,
		VATNumber:         s.vatNumber,
		Profession:        s.profession,
		Address:           s.address,
		PostalCode:        s.postalCode,
		City:              s.city,
		Country:           s.country,
		IBAN:              s.iban,
		BIC:               s.bic,
		Emails:            s.Emails(),
		Phone:             s.phone,
		ContractVariables: s.ContractVariables(),
	}
}

func (s *Supplier) Update(d Details, now time.Time) error {
	if err := d.validate(); err != nil {
		return err
	}
	s.apply(d)
	s.updatedAt = now.UTC()
	return nil
}

func (s *Supplier) SetStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid supplier status: %s", status)
	}
	s.status = status
	s.updatedAt = now.UTC()
	return nil
}

func (s *Supplier) apply(d Details) {
	s.name = strings.TrimSpace(d.Name)
	s.siret = strings.TrimSpace(d.SIRET)
	s.vatNumber = d.VATNumber
	s.profession = d.Profession
	s.address = d.Address
	s.postalCode = d.PostalCode
	s.city = d.City
	s.country = d.Country
	s.iban = strings.ReplaceAll(d.IBAN, " ", "")
	s.bic = d.BIC
	s.emails = append([]string{}, d.Emails...)
	s.phone = d.Phone
	s.contractVariables = make(map[string]any, len(d.ContractVariables))
	for k, v := range d.ContractVariables {
		s.contractVariables[k] = v
	}
}

func (d Details) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("supplier name is required")
	}
	if strings.TrimSpace(d.SIRET) == "" {
		return fmt.Errorf("supplier SIRET is required")
	}
	for _, e := range d.Emails {
		if _, err := mail.ParseAddress(e); err != nil {
			return fmt.Errorf("invalid supplier email %q", e)
		}
	}
	return nil
}
