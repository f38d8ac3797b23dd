// Package rendering resolves contract variables and renders template HTML.
package rendering

import (
	"github.com/prism-finance/prism/internal/domain/supplier"
)

// Canonical variable names filled from supplier fields.
const (
	VarSupplierName = "SupplierName"
	VarSIRET        = "SIRET"
	VarTVA          = "TVA"
	VarProfession   = "Profession"
	VarAdresse      = "Adresse"
	VarCodePostal   = "CodePostal"
	VarVille        = "Ville"
	VarPays         = "Pays"
	VarIBAN         = "IBAN"
	VarBIC          = "BIC"
	VarEmail        = "Email"
)

// SupplierVariables returns the canonical keys for s. Every key is present;
// empty fields map to "".
func SupplierVariables(s *supplier.Supplier) map[string]any {
	return map[string]any{
		VarSupplierName: s.Name(),
		VarSIRET:        s.SIRET(),
		VarTVA:          s.VATNumber(),
		VarProfession:   s.Profession(),
		VarAdresse:      s.Address(),
		VarCodePostal:   s.PostalCode(),
		VarVille:        s.City(),
		VarPays:         s.Country(),
		VarIBAN:         s.IBAN(),
		VarBIC:          s.BIC(),
		VarEmail:        s.PrimaryEmail(),
	}
}

// ResolveVariables layers canonical supplier fields, then the supplier's
// contract variables, then overrides. Later layers win.
func ResolveVariables(s *supplier.Supplier, overrides map[string]any) map[string]any {
	vars := SupplierVariables(s)
	for k, v := range s.ContractVariables() {
		vars[k] = v
	}
	for k, v := range overrides {
		vars[k] = v
	}
	return vars
}
