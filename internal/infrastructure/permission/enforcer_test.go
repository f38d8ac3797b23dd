package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/logger"
)

func newTestEnforcer(t *testing.T) (*Enforcer, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e, err := NewEnforcer(db, logger.NewDiscard())
	require.NoError(t, err)
	require.NoError(t, e.SeedDefaultPolicies())
	return e, db
}

func TestEnforcer_RoleCapabilities(t *testing.T) {
	e, _ := newTestEnforcer(t)

	tests := []struct {
		role     authorization.UserRole
		resource string
		action   string
		want     bool
	}{
		{authorization.RoleSupplier, ResourceContract, ActionSign, true},
		{authorization.RoleSupplier, ResourceContract, ActionGenerate, false},
		{authorization.RoleSupplier, ResourceTemplate, ActionRead, false},
		{authorization.RoleSupplier, ResourceDocument, ActionReview, false},
		{authorization.RoleAdmin, ResourceContract, ActionGenerate, true},
		{authorization.RoleAdmin, ResourceCompany, ActionCreate, false},
		{authorization.RoleSuperAdmin, ResourceCompany, ActionCreate, true},
		{authorization.RoleSuperAdmin, ResourceTemplate, ActionDelete, true},
		{authorization.RoleSupplier, ResourceSupplier, ActionUpdate, true},
		{authorization.RoleSupplier, ResourceInvoice, ActionCreate, true},
		{authorization.RoleSupplier, ResourceInvoice, ActionReview, false},
		{authorization.RoleSupplier, ResourcePurchaseOrder, ActionSign, true},
		{authorization.RoleSupplier, ResourcePurchaseOrder, ActionSend, false},
		{authorization.RoleSupplier, ResourceGeneralConditions, ActionAccept, true},
		{authorization.RoleSupplier, ResourceGeneralConditions, ActionCreate, false},
		{authorization.RoleAdmin, ResourceInvoice, ActionReview, true},
		{authorization.RoleAdmin, ResourcePurchaseOrder, ActionSend, true},
		{authorization.RoleAdmin, ResourcePurchaseOrder, ActionSign, false},
		{authorization.RoleAdmin, ResourceGeneralConditions, ActionAccept, false},
		{authorization.RoleSuperAdmin, ResourceGeneralConditions, ActionDelete, true},
	}

	for _, tt := range tests {
		t.Run(tt.role.String()+"/"+tt.resource+"/"+tt.action, func(t *testing.T) {
			allowed, err := e.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestEnforcer_PoliciesPersistAndSeedIsIdempotent(t *testing.T) {
	e, db := newTestEnforcer(t)
	require.NoError(t, e.SeedDefaultPolicies())

	var count int64
	require.NoError(t, db.Table("casbin_rule").Where("ptype = ?", "p").Count(&count).Error)
	assert.Equal(t, int64(len(DefaultPolicies)), count)

	require.NoError(t, e.RemovePolicy(authorization.RoleSupplier, ResourceContract, ActionSign))
	reloaded, err := NewEnforcer(db, logger.NewDiscard())
	require.NoError(t, err)
	allowed, err := reloaded.Enforce(authorization.RoleSupplier, ResourceContract, ActionSign)
	require.NoError(t, err)
	assert.False(t, allowed)
}
