package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	ContentTypeHTML = "text/html; charset=utf-8"

	// Context keys
	ContextKeyIdentity = "identity"
	ContextKeyUserID   = "user_id"
	ContextKeyUserRole = "user_role"

	// Database table names
	TableCompanies      = "companies"
	TableUsers          = "users"
	TableSuppliers      = "suppliers"
	TableTemplates      = "contract_templates"
	TableContracts      = "contracts"
	TableDocuments      = "supplier_documents"
	TableNotifications  = "notifications"
	TableInvoices       = "invoices"
	TablePurchaseOrders = "purchase_orders"
	TableConditions     = "general_conditions"
	TableAcceptances    = "general_conditions_acceptances"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
