package contract

import (
	"errors"
	"fmt"

	vo "github.com/prism-finance/prism/internal/domain/contract/valueobjects"
)

var (
	ErrInvalidTransition      = errors.New("invalid contract status transition")
	ErrContractExpired        = errors.New("contract has expired")
	ErrConcurrentModification = errors.New("contract was modified concurrently")
	ErrInvalidParty           = errors.New("invalid signing party")
)

func invalidTransition(from vo.ContractStatus, action string) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, action, from)
}

var ErrSignerRequired = errors.New("signer name and surname are required")
