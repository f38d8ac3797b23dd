package models

// All lists every persisted model in dependency order.
func All() []interface{} {
	return []interface{}{
		&CompanyModel{},
		&UserModel{},
		&SupplierModel{},
		&TemplateModel{},
		&ContractModel{},
		&DocumentModel{},
		&NotificationModel{},
		&PurchaseOrderModel{},
		&InvoiceModel{},
		&GeneralConditionsModel{},
		&AcceptanceModel{},
	}
}
