package valueobjects

import "fmt"

type ContractStatus string

const (
	StatusDraft          ContractStatus = "draft"
	StatusSupplierSigned ContractStatus = "supplier_signed"
	StatusAdminSigned    ContractStatus = "admin_signed"
	StatusSigned         ContractStatus = "signed"
	StatusExpired        ContractStatus = "expired"
	StatusCancelled      ContractStatus = "cancelled"
)

var validStatuses = map[ContractStatus]bool{
	StatusDraft:          true,
	StatusSupplierSigned: true,
	StatusAdminSigned:    true,
	StatusSigned:         true,
	StatusExpired:        true,
	StatusCancelled:      true,
}

// NonTerminalStatuses lists the states a contract can still leave.
var NonTerminalStatuses = []ContractStatus{StatusDraft, StatusSupplierSigned, StatusAdminSigned}

func (s ContractStatus) String() string {
	return string(s)
}

func (s ContractStatus) IsValid() bool {
	return validStatuses[s]
}

func (s ContractStatus) IsTerminal() bool {
	return s == StatusSigned || s == StatusExpired || s == StatusCancelled
}

func (s ContractStatus) CanTransitionTo(target ContractStatus) bool {
	transitions := map[ContractStatus][]ContractStatus{
		StatusDraft:          {StatusSupplierSigned, StatusAdminSigned, StatusExpired, StatusCancelled},
		StatusSupplierSigned: {StatusSigned, StatusExpired, StatusCancelled},
		StatusAdminSigned:    {StatusSigned, StatusExpired, StatusCancelled},
		StatusSigned:         {},
		StatusExpired:        {},
		StatusCancelled:      {},
	}

	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func NewContractStatus(s string) (ContractStatus, error) {
	status := ContractStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid contract status: %s", s)
	}
	return status, nil
}

// Party identifies which side of a contract signs.
type Party string

const (
	PartySupplier Party = "supplier"
	PartyAdmin    Party = "admin"
)

func (p Party) IsValid() bool {
	return p == PartySupplier || p == PartyAdmin
}

// Counterparty returns the other signing side.
func (p Party) Counterparty() Party {
	if p == PartySupplier {
		return PartyAdmin
	}
	return PartySupplier
}

// signTransitions holds the only paths a signature can take.
var signTransitions = map[Party]map[ContractStatus]ContractStatus{
	PartySupplier: {
		StatusDraft:       StatusSupplierSigned,
		StatusAdminSigned: StatusSigned,
	},
	PartyAdmin: {
		StatusDraft:          StatusAdminSigned,
		StatusSupplierSigned: StatusSigned,
	},
}

// NextAfterSign returns the status reached when party signs from s.
func (s ContractStatus) NextAfterSign(party Party) (ContractStatus, bool) {
	next, ok := signTransitions[party][s]
	return next, ok
}
