package notification

import "fmt"

type Type string

const (
	TypeContractCreated      Type = "contract_created"
	TypeContractSigned       Type = "contract_signed"
	TypeContractExpired      Type = "contract_expired"
	TypeContractCancelled    Type = "contract_cancelled"
	TypeDocumentUploaded     Type = "document_uploaded"
	TypeDocumentValidated    Type = "document_validated"
	TypeDocumentRejected     Type = "document_rejected"
	TypeSupplierUpdated      Type = "supplier_updated"
	TypeInvoiceUploaded      Type = "invoice_uploaded"
	TypeInvoiceApproved      Type = "invoice_approved"
	TypeInvoiceRejected      Type = "invoice_rejected"
	TypeInvoicePaid          Type = "invoice_paid"
	TypePOCreated            Type = "po_created"
	TypePOCancelled          Type = "po_cancelled"
	TypePOSigned             Type = "po_signed"
	TypeGCAcceptanceRequired Type = "gc_acceptance_required"
	TypeGCAccepted           Type = "gc_accepted"
)

var validTypes = map[Type]bool{
	TypeContractCreated:      true,
	TypeContractSigned:       true,
	TypeContractExpired:      true,
	TypeContractCancelled:    true,
	TypeDocumentUploaded:     true,
	TypeDocumentValidated:    true,
	TypeDocumentRejected:     true,
	TypeSupplierUpdated:      true,
	TypeInvoiceUploaded:      true,
	TypeInvoiceApproved:      true,
	TypeInvoiceRejected:      true,
	TypeInvoicePaid:          true,
	TypePOCreated:            true,
	TypePOCancelled:          true,
	TypePOSigned:             true,
	TypeGCAcceptanceRequired: true,
	TypeGCAccepted:           true,
}

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	return validTypes[t]
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
