package usecases

import (
	"fmt"

	appnotification "github.com/prism-finance/prism/internal/application/notification"
	"github.com/prism-finance/prism/internal/domain/contract"
	vo "github.com/prism-finance/prism/internal/domain/contract/valueobjects"
	"github.com/prism-finance/prism/internal/domain/notification"
)

const targetTypeContract = "contract"

func contractEvent(c *contract.Contract, t notification.Type, title, message string, audience appnotification.Audience) appnotification.Event {
	return appnotification.Event{
		Type:       t,
		Title:      title,
		Message:    message,
		TargetID:   c.ID(),
		TargetType: targetTypeContract,
		CompanyID:  c.CompanyID(),
		Audience:   audience,
	}
}

func bothParties(c *contract.Contract) appnotification.Audience {
	return appnotification.CompanyAdmins(c.CompanyID()).And(appnotification.SupplierUsers(c.SupplierID()))
}

func createdEvent(c *contract.Contract) appnotification.Event {
	return contractEvent(c, notification.TypeContractCreated,
		"New contract to sign",
		fmt.Sprintf("Contract %q is ready for your signature.", c.Name()),
		appnotification.SupplierUsers(c.SupplierID()),
	)
}

// signedEvent addresses the counterparty, or both sides once fully signed.
func signedEvent(c *contract.Contract, party vo.Party) appnotification.Event {
	if c.Status() == vo.StatusSigned {
		return contractEvent(c, notification.TypeContractSigned,
			"Contract fully signed",
			fmt.Sprintf("Contract %q has been signed by both parties.", c.Name()),
			bothParties(c),
		)
	}
	if party == vo.PartySupplier {
		return contractEvent(c, notification.TypeContractSigned,
			"Contract signed by supplier",
			fmt.Sprintf("The supplier signed contract %q. Your signature is required.", c.Name()),
			appnotification.CompanyAdmins(c.CompanyID()),
		)
	}
	return contractEvent(c, notification.TypeContractSigned,
		"Contract signed by client",
		fmt.Sprintf("Contract %q was signed by the client. Your signature is required.", c.Name()),
		appnotification.SupplierUsers(c.SupplierID()),
	)
}

func expiredEvent(c *contract.Contract) appnotification.Event {
	return contractEvent(c, notification.TypeContractExpired,
		"Contract expired",
		fmt.Sprintf("Contract %q expired before it was fully signed.", c.Name()),
		bothParties(c),
	)
}

func cancelledEvent(c *contract.Contract) appnotification.Event {
	return contractEvent(c, notification.TypeContractCancelled,
		"Contract cancelled",
		fmt.Sprintf("Contract %q has been cancelled.", c.Name()),
		appnotification.SupplierUsers(c.SupplierID()),
	)
}
