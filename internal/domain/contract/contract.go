package contract

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	vo "github.com/prism-finance/prism/internal/domain/contract/valueobjects"
	"github.com/prism-finance/prism/internal/shared/id"
)

// Signature records who signed one side of a contract and when.
type Signature struct {
	Name     string
	Surname  string
	UserID   string
	SignedAt time.Time
}

// Contract is a rendered template bound to one supplier. Once created its
// content and file path never change; only status and signatures move.
type Contract struct {
	id                string
	companyID         string
	templateID        string
	supplierID        string
	name              string
	variables         map[string]any
	content           string
	filePath          string
	status            vo.ContractStatus
	supplierSignature *Signature
	adminSignature    *Signature
	expiryDate        *time.Time
	createdBy         string
	createdAt         time.Time
	updatedAt         time.Time
}

type NewContractParams struct {
	CompanyID  string
	TemplateID string
	SupplierID string
	Name       string
	Variables  map[string]any
	HTML       string
	FilePath   string
	ExpiryDate *time.Time
	CreatedBy  string
	Now        time.Time
}

// NewContract creates a draft contract holding the rendered HTML.
func NewContract(p NewContractParams) (*Contract, error) {
	if p.CompanyID == "" {
		return nil, fmt.Errorf("company ID is required")
	}
	if p.TemplateID == "" {
		return nil, fmt.Errorf("template ID is required")
	}
	if p.SupplierID == "" {
		return nil, fmt.Errorf("supplier ID is required")
	}
	if p.FilePath == "" {
		return nil, fmt.Errorf("file path is required")
	}

	contractID, err := id.NewContractID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate contract ID: %w", err)
	}

	now := p.Now.UTC()
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = "Contract " + now.Format("2006-01-02")
	}

	vars := make(map[string]any, len(p.Variables))
	for k, v := range p.Variables {
		vars[k] = v
	}

	return &Contract{
		id:         contractID,
		companyID:  p.CompanyID,
		templateID: p.TemplateID,
		supplierID: p.SupplierID,
		name:       name,
		variables:  vars,
		content:    base64.StdEncoding.EncodeToString([]byte(p.HTML)),
		filePath:   p.FilePath,
		status:     vo.StatusDraft,
		expiryDate: p.ExpiryDate,
		createdBy:  p.CreatedBy,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

type ReconstructParams struct {
	ID                string
	CompanyID         string
	TemplateID        string
	SupplierID        string
	Name              string
	Variables         map[string]any
	Content           string
	FilePath          string
	Status            vo.ContractStatus
	SupplierSignature *Signature
	AdminSignature    *Signature
	ExpiryDate        *time.Time
	CreatedBy         string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ReconstructContract rebuilds a contract from persistence.
func ReconstructContract(p ReconstructParams) (*Contract, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("contract ID cannot be empty")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid contract status: %s", p.Status)
	}
	if p.Variables == nil {
		p.Variables = map[string]any{}
	}

	return &Contract{
		id:                p.ID,
		companyID:         p.CompanyID,
		templateID:        p.TemplateID,
		supplierID:        p.SupplierID,
		name:              p.Name,
		variables:         p.Variables,
		content:           p.Content,
		filePath:          p.FilePath,
		status:            p.Status,
		supplierSignature: p.SupplierSignature,
		adminSignature:    p.AdminSignature,
		expiryDate:        p.ExpiryDate,
		createdBy:         p.CreatedBy,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}, nil
}

func (c *Contract) ID() string                    { return c.id }
func (c *Contract) CompanyID() string             { return c.companyID }
func (c *Contract) TemplateID() string            { return c.templateID }
func (c *Contract) SupplierID() string            { return c.supplierID }
func (c *Contract) Name() string                  { return c.name }
func (c *Contract) Content() string               { return c.content }
func (c *Contract) FilePath() string              { return c.filePath }
func (c *Contract) Status() vo.ContractStatus     { return c.status }
func (c *Contract) SupplierSignature() *Signature { return c.supplierSignature }
func (c *Contract) AdminSignature() *Signature    { return c.adminSignature }
func (c *Contract) ExpiryDate() *time.Time        { return c.expiryDate }
func (c *Contract) CreatedBy() string             { return c.createdBy }
func (c *Contract) CreatedAt() time.Time          { return c.createdAt }
func (c *Contract) UpdatedAt() time.Time          { return c.updatedAt }

// Variables returns a copy of the resolved mapping used at generation.
func (c *Contract) Variables() map[string]any {
	out := make(map[string]any, len(c.variables))
	for k, v := range c.variables {
		out[k] = v
	}
	return out
}

// HTML decodes the stored content.
func (c *Contract) HTML() (string, error) {
	raw, err := base64.StdEncoding.DecodeString(c.content)
	if err != nil {
		return "", fmt.Errorf("failed to decode contract content: %w", err)
	}
	return string(raw), nil
}

// IsPastExpiry reports whether the expiry date is before now.
func (c *Contract) IsPastExpiry(now time.Time) bool {
	return c.expiryDate != nil && c.expiryDate.Before(now)
}

// Sign records the party's signature and advances the status. It returns the
// status observed before the change so the caller can persist conditionally.
func (c *Contract) Sign(party vo.Party, name, surname, userID string, now time.Time) (vo.ContractStatus, error) {
	if !party.IsValid() {
		return "", ErrInvalidParty
	}
	name, surname = strings.TrimSpace(name), strings.TrimSpace(surname)
	if name == "" || surname == "" {
		return "", ErrSignerRequired
	}

	from := c.status
	if !from.IsTerminal() && c.IsPastExpiry(now) {
		return from, ErrContractExpired
	}

	next, ok := from.NextAfterSign(party)
	if !ok {
		return from, invalidTransition(from, "sign as "+string(party))
	}

	sig := &Signature{Name: name, Surname: surname, UserID: userID, SignedAt: now.UTC()}
	if party == vo.PartySupplier {
		c.supplierSignature = sig
	} else {
		c.adminSignature = sig
	}
	c.status = next
	c.updatedAt = now.UTC()

	return from, nil
}

// Cancel moves any non-terminal contract to cancelled.
func (c *Contract) Cancel(now time.Time) (vo.ContractStatus, error) {
	return c.moveTo(vo.StatusCancelled, "cancel", now)
}

// Expire marks a non-terminal contract whose expiry date has passed.
func (c *Contract) Expire(now time.Time) (vo.ContractStatus, error) {
	if !c.IsPastExpiry(now) {
		return c.status, invalidTransition(c.status, "expire before expiry date")
	}
	return c.moveTo(vo.StatusExpired, "expire", now)
}

func (c *Contract) moveTo(target vo.ContractStatus, action string, now time.Time) (vo.ContractStatus, error) {
	from := c.status
	if !from.CanTransitionTo(target) {
		return from, invalidTransition(from, action)
	}
	c.status = target
	c.updatedAt = now.UTC()
	return from, nil
}
