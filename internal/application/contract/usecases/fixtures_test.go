package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/prism-finance/prism/internal/domain/contract"
	vo "github.com/prism-finance/prism/internal/domain/contract/valueobjects"
	"github.com/prism-finance/prism/internal/domain/supplier"
	"github.com/prism-finance/prism/internal/domain/template"
	"github.com/prism-finance/prism/internal/domain/user"
	"github.com/prism-finance/prism/internal/shared/authorization"
)

const companyID = "cmp_acmeclient0001"

func adminIdentity(company string) *authorization.Identity {
	return &authorization.Identity{UserID: "usr_admin_" + company, Role: authorization.RoleAdmin, CompanyID: company}
}

func superAdminIdentity() *authorization.Identity {
	return &authorization.Identity{UserID: "usr_root", Role: authorization.RoleSuperAdmin}
}

func supplierIdentity(s *supplier.Supplier) *authorization.Identity {
	return &authorization.Identity{
		UserID:     "usr_sup_" + s.ID(),
		Role:       authorization.RoleSupplier,
		CompanyID:  s.CompanyID(),
		SupplierID: s.ID(),
	}
}

func newTestSupplier(t *testing.T, company string) *supplier.Supplier {
	t.Helper()
	s, err := supplier.NewSupplier(company, supplier.Details{
		Name:   "Acme",
		SIRET:  "12345678900011",
		IBAN:   "FR7630006000011234567890189",
		Emails: []string{"billing@acme.test"},
	}, time.Now())
	require.NoError(t, err)
	return s
}

func newTestTemplate(t *testing.T, company string, validity *int) *template.Template {
	t.Helper()
	tpl, err := template.NewTemplate(template.NewTemplateParams{
		CompanyID:          company,
		Name:               "Service agreement",
		FileName:           "agreement.html",
		FilePath:           "templates/" + company + "/agreement.html",
		Variables:          []string{"IBAN", "SupplierName"},
		ValidityPeriodDays: validity,
		CreatedBy:          "usr_admin",
		Now:                time.Now(),
	})
	require.NoError(t, err)
	return tpl
}

func newDraftContract(t *testing.T, s *supplier.Supplier) *contract.Contract {
	t.Helper()
	c, err := contract.NewContract(contract.NewContractParams{
		CompanyID:  s.CompanyID(),
		TemplateID: "tpl_agreement00001",
		SupplierID: s.ID(),
		Variables:  map[string]any{"SupplierName": s.Name()},
		HTML:       "<p>Acme</p>",
		FilePath:   "contracts/contract_x.html",
		CreatedBy:  "usr_admin",
		Now:        time.Now(),
	})
	require.NoError(t, err)
	return c
}

func contractInStatus(t *testing.T, s *supplier.Supplier, status vo.ContractStatus, expiry *time.Time) *contract.Contract {
	t.Helper()
	draft := newDraftContract(t, s)
	c, err := contract.ReconstructContract(contract.ReconstructParams{
		ID:         draft.ID(),
		CompanyID:  draft.CompanyID(),
		TemplateID: draft.TemplateID(),
		SupplierID: draft.SupplierID(),
		Name:       draft.Name(),
		Variables:  draft.Variables(),
		Content:    draft.Content(),
		FilePath:   draft.FilePath(),
		Status:     status,
		ExpiryDate: expiry,
		CreatedAt:  draft.CreatedAt(),
		UpdatedAt:  draft.UpdatedAt(),
	})
	require.NoError(t, err)
	return c
}

func directoryUser(t *testing.T, id string, role authorization.UserRole, company, supplierID string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(user.ReconstructParams{
		ID:         id,
		Email:      id + "@example.test",
		Name:       "Test",
		Surname:    id,
		Role:       role,
		CompanyID:  company,
		SupplierID: supplierID,
		IsActive:   true,
	})
	require.NoError(t, err)
	return u
}

func fixedTemplates(tpls ...*template.Template) *mockTemplateReader {
	return &mockTemplateReader{GetByIDFunc: func(ctx context.Context, id string) (*template.Template, error) {
		for _, tpl := range tpls {
			if tpl.ID() == id {
				return tpl, nil
			}
		}
		return nil, nil
	}}
}

func fixedSuppliers(sups ...*supplier.Supplier) *mockSupplierReader {
	return &mockSupplierReader{GetByIDFunc: func(ctx context.Context, id string) (*supplier.Supplier, error) {
		for _, s := range sups {
			if s.ID() == id {
				return s, nil
			}
		}
		return nil, nil
	}}
}
