package permission

import (
	"fmt"

	"github.com/prism-finance/prism/internal/shared/authorization"
)

// Resources and actions checked by the HTTP layer.
const (
	ResourceCompany           = "company"
	ResourceUser              = "user"
	ResourceSupplier          = "supplier"
	ResourceDocument          = "document"
	ResourceTemplate          = "template"
	ResourceContract          = "contract"
	ResourceNotification      = "notification"
	ResourceInvoice           = "invoice"
	ResourcePurchaseOrder     = "purchase_order"
	ResourceGeneralConditions = "general_conditions"

	ActionCreate   = "create"
	ActionRead     = "read"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionReview   = "review"
	ActionGenerate = "generate"
	ActionSign     = "sign"
	ActionCancel   = "cancel"
	ActionSend     = "send"
	ActionAccept   = "accept"
)

// DefaultPolicies are the role capabilities. Tenant and ownership checks
// happen in the application layer on top of these.
var DefaultPolicies = [][]string{
	{"supplier", ResourceSupplier, ActionRead},
	{"supplier", ResourceSupplier, ActionUpdate},
	{"supplier", ResourceDocument, ActionCreate},
	{"supplier", ResourceDocument, ActionRead},
	{"supplier", ResourceContract, ActionRead},
	{"supplier", ResourceContract, ActionSign},
	{"supplier", ResourceNotification, ActionRead},
	{"supplier", ResourceNotification, ActionUpdate},
	{"supplier", ResourceNotification, ActionDelete},
	{"supplier", ResourceInvoice, ActionCreate},
	{"supplier", ResourceInvoice, ActionRead},
	{"supplier", ResourceInvoice, ActionDelete},
	{"supplier", ResourcePurchaseOrder, ActionRead},
	{"supplier", ResourcePurchaseOrder, ActionSign},
	{"supplier", ResourceGeneralConditions, ActionRead},
	{"supplier", ResourceGeneralConditions, ActionAccept},

	{"admin", ResourceCompany, ActionRead},
	{"admin", ResourceUser, ActionCreate},
	{"admin", ResourceUser, ActionRead},
	{"admin", ResourceSupplier, ActionCreate},
	{"admin", ResourceSupplier, ActionRead},
	{"admin", ResourceSupplier, ActionUpdate},
	{"admin", ResourceDocument, ActionCreate},
	{"admin", ResourceDocument, ActionRead},
	{"admin", ResourceDocument, ActionReview},
	{"admin", ResourceDocument, ActionDelete},
	{"admin", ResourceTemplate, ActionCreate},
	{"admin", ResourceTemplate, ActionRead},
	{"admin", ResourceTemplate, ActionUpdate},
	{"admin", ResourceTemplate, ActionDelete},
	{"admin", ResourceContract, ActionGenerate},
	{"admin", ResourceContract, ActionRead},
	{"admin", ResourceContract, ActionSign},
	{"admin", ResourceContract, ActionCancel},
	{"admin", ResourceNotification, ActionRead},
	{"admin", ResourceNotification, ActionUpdate},
	{"admin", ResourceNotification, ActionDelete},
	{"admin", ResourceInvoice, ActionCreate},
	{"admin", ResourceInvoice, ActionRead},
	{"admin", ResourceInvoice, ActionReview},
	{"admin", ResourceInvoice, ActionDelete},
	{"admin", ResourcePurchaseOrder, ActionCreate},
	{"admin", ResourcePurchaseOrder, ActionRead},
	{"admin", ResourcePurchaseOrder, ActionUpdate},
	{"admin", ResourcePurchaseOrder, ActionSend},
	{"admin", ResourcePurchaseOrder, ActionCancel},
	{"admin", ResourceGeneralConditions, ActionCreate},
	{"admin", ResourceGeneralConditions, ActionRead},
	{"admin", ResourceGeneralConditions, ActionUpdate},
	{"admin", ResourceGeneralConditions, ActionDelete},

	{"super_admin", ResourceCompany, ActionCreate},
}

// SeedDefaultPolicies inserts any missing default policy and the
// super_admin to admin inheritance. Safe to run on every start.
func (e *Enforcer) SeedDefaultPolicies() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	added := 0
	for _, policy := range DefaultPolicies {
		ok, err := e.enforcer.AddPolicy(policy[0], policy[1], policy[2])
		if err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", policy[0], policy[1], policy[2], err)
		}
		if ok {
			added++
		}
	}

	if _, err := e.enforcer.AddGroupingPolicy(authorization.RoleSuperAdmin.String(), authorization.RoleAdmin.String()); err != nil {
		return fmt.Errorf("failed to add role inheritance: %w", err)
	}

	e.logger.Infow("permission policies seeded", "added", added, "total", len(DefaultPolicies))
	return nil
}
