package template

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prism-finance/prism/internal/shared/id"
)

// Template is an uploaded contract document plus the placeholder names found in it.
type Template struct {
	id                 string
	companyID          string
	name               string
	description        string
	fileName           string
	filePath           string
	variables          []string
	validityPeriodDays *int
	createdBy          string
	createdAt          time.Time
	updatedAt          time.Time
}

type NewTemplateParams struct {
	CompanyID          string
	Name               string
	Description        string
	FileName           string
	FilePath           string
	Variables          []string
	ValidityPeriodDays *int
	CreatedBy          string
	Now                time.Time
}

func NewTemplate(p NewTemplateParams) (*Template, error) {
	if p.CompanyID == "" {
		return nil, fmt.Errorf("company ID is required")
	}
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if p.FilePath == "" {
		return nil, fmt.Errorf("file path is required")
	}
	if err := validateValidity(p.ValidityPeriodDays); err != nil {
		return nil, err
	}

	templateID, err := id.NewTemplateID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate template ID: %w", err)
	}

	now := p.Now.UTC()
	return &Template{
		id:                 templateID,
		companyID:          p.CompanyID,
		name:               name,
		description:        p.Description,
		fileName:           p.FileName,
		filePath:           p.FilePath,
		variables:          normalize(p.Variables),
		validityPeriodDays: p.ValidityPeriodDays,
		createdBy:          p.CreatedBy,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

type ReconstructParams struct {
	ID                 string
	CompanyID          string
	Name               string
	Description        string
	FileName           string
	FilePath           string
	Variables          []string
	ValidityPeriodDays *int
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func ReconstructTemplate(p ReconstructParams) (*Template, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("template ID cannot be empty")
	}
	return &Template{
		id:                 p.ID,
		companyID:          p.CompanyID,
		name:               p.Name,
		description:        p.Description,
		fileName:           p.FileName,
		filePath:           p.FilePath,
		variables:          normalize(p.Variables),
		validityPeriodDays: p.ValidityPeriodDays,
		createdBy:          p.CreatedBy,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}, nil
}

func (t *Template) ID() string               { return t.id }
func (t *Template) CompanyID() string        { return t.companyID }
func (t *Template) Name() string             { return t.name }
func (t *Template) Description() string      { return t.description }
func (t *Template) FileName() string         { return t.fileName }
func (t *Template) FilePath() string         { return t.filePath }
func (t *Template) ValidityPeriodDays() *int { return t.validityPeriodDays }
func (t *Template) CreatedBy() string        { return t.createdBy }
func (t *Template) CreatedAt() time.Time     { return t.createdAt }
func (t *Template) UpdatedAt() time.Time     { return t.updatedAt }

// Variables returns a copy of the placeholder set.
func (t *Template) Variables() []string {
	out := make([]string, len(t.variables))
	copy(out, t.variables)
	return out
}

// ReplaceFile swaps the stored document. The variable set is replaced
// entirely, never merged.
func (t *Template) ReplaceFile(fileName, filePath string, variables []string, now time.Time) error {
	if filePath == "" {
		return fmt.Errorf("file path is required")
	}
	t.fileName = fileName
	t.filePath = filePath
	t.variables = normalize(variables)
	t.updatedAt = now.UTC()
	return nil
}

// UpdateMetadata changes the fields that are set. clearValidity removes the
// validity period.
func (t *Template) UpdateMetadata(name, description *string, validity *int, clearValidity bool, now time.Time) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return fmt.Errorf("template name cannot be empty")
		}
		t.name = trimmed
	}
	if description != nil {
		t.description = *description
	}
	if clearValidity {
		t.validityPeriodDays = nil
	} else if validity != nil {
		if err := validateValidity(validity); err != nil {
			return err
		}
		v := *validity
		t.validityPeriodDays = &v
	}
	t.updatedAt = now.UTC()
	return nil
}

// ExpiryFrom computes the contract expiry for a contract generated at now.
func (t *Template) ExpiryFrom(now time.Time) *time.Time {
	if t.validityPeriodDays == nil {
		return nil
	}
	expiry := now.UTC().AddDate(0, 0, *t.validityPeriodDays)
	return &expiry
}

func validateValidity(days *int) error {
	if days != nil && *days <= 0 {
		return ErrInvalidValidity
	}
	return nil
}

func normalize(variables []string) []string {
	seen := make(map[string]struct{}, len(variables))
	out := make([]string, 0, len(variables))
	for _, v := range variables {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
