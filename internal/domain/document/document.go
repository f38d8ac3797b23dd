package document

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prism-finance/prism/internal/shared/id"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusValidated Status = "validated"
	StatusRejected  Status = "rejected"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusValidated || s == StatusRejected
}

var ErrInvalidStatus = errors.New("invalid document status")

// Document is a compliance file uploaded for a supplier and reviewed by an admin.
type Document struct {
	id              string
	companyID       string
	supplierID      string
	name            string
	category        string
	fileName        string
	filePath        string
	status          Status
	validationNotes string
	validatedBy     string
	validatedAt     *time.Time
	uploadedBy      string
	createdAt       time.Time
	updatedAt       time.Time
}

type NewDocumentParams struct {
	CompanyID  string
	SupplierID string
	Name       string
	Category   string
	FileName   string
	FilePath   string
	UploadedBy string
	Now        time.Time
}

func NewDocument(p NewDocumentParams) (*Document, error) {
	if p.CompanyID == "" || p.SupplierID == "" {
		return nil, fmt.Errorf("company and supplier are required")
	}
	if p.FilePath == "" {
		return nil, fmt.Errorf("file path is required")
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		name = p.FileName
	}
	category := strings.TrimSpace(p.Category)
	if category == "" {
		category = "other"
	}

	docID, err := id.NewDocumentID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate document ID: %w", err)
	}

	return &Document{
		id:         docID,
		companyID:  p.CompanyID,
		supplierID: p.SupplierID,
		name:       name,
		category:   category,
		fileName:   p.FileName,
		filePath:   p.FilePath,
		status:     StatusPending,
		uploadedBy: p.UploadedBy,
		createdAt:  p.Now.UTC(),
		updatedAt:  p.Now.UTC(),
	}, nil
}

type ReconstructParams struct {
	ID              string
	CompanyID       string
	SupplierID      string
	Name            string
	Category        string
	FileName        string
	FilePath        string
	Status          Status
	ValidationNotes string
	ValidatedBy     string
	ValidatedAt     *time.Time
	UploadedBy      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructDocument(p ReconstructParams) (*Document, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("document ID cannot be empty")
	}
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Document{
		id:              p.ID,
		companyID:       p.CompanyID,
		supplierID:      p.SupplierID,
		name:            p.Name,
		category:        p.Category,
		fileName:        p.FileName,
		filePath:        p.FilePath,
		status:          p.Status,
		validationNotes: p.ValidationNotes,
		validatedBy:     p.ValidatedBy,
		validatedAt:     p.ValidatedAt,
		uploadedBy:      p.UploadedBy,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

func (d *Document) ID() string              { return d.id }
func (d *Document) CompanyID() string       { return d.companyID }
func (d *Document) SupplierID() string      { return d.supplierID }
func (d *Document) Name() string            { return d.name }
func (d *Document) Category() string        { return d.category }
func (d *Document) FileName() string        { return d.fileName }
func (d *Document) FilePath() string        { return d.filePath }
func (d *Document) Status() Status          { return d.status }
func (d *Document) ValidationNotes() string { return d.validationNotes }
func (d *Document) ValidatedBy() string     { return d.validatedBy }
func (d *Document) ValidatedAt() *time.Time { return d.validatedAt }
func (d *Document) UploadedBy() string      { return d.uploadedBy }
func (d *Document) CreatedAt() time.Time    { return d.createdAt }
func (d *Document) UpdatedAt() time.Time    { return d.updatedAt }

// Review records an admin decision. Moving back to pending clears the reviewer.
func (d *Document) Review(status Status, notes, reviewerID string, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	d.status = status
	d.validationNotes = notes
	if status == StatusPending {
		d.validatedBy = ""
		d.validatedAt = nil
	} else {
		at := now.UTC()
		d.validatedBy = reviewerID
		d.validatedAt = &at
	}
	d.updatedAt = now.UTC()
	return nil
}
