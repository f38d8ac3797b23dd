package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextAfterSign(t *testing.T) {
	tests := []struct {
		from   ContractStatus
		party  Party
		want   ContractStatus
		wantOK bool
	}{
		{StatusDraft, PartySupplier, StatusSupplierSigned, true},
		{StatusDraft, PartyAdmin, StatusAdminSigned, true},
		{StatusAdminSigned, PartySupplier, StatusSigned, true},
		{StatusSupplierSigned, PartyAdmin, StatusSigned, true},
		{StatusSupplierSigned, PartySupplier, "", false},
		{StatusAdminSigned, PartyAdmin, "", false},
		{StatusSigned, PartySupplier, "", false},
		{StatusSigned, PartyAdmin, "", false},
		{StatusExpired, PartyAdmin, "", false},
		{StatusCancelled, PartySupplier, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.party), func(t *testing.T) {
			got, ok := tt.from.NextAfterSign(tt.party)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			if ok {
				assert.True(t, tt.from.CanTransitionTo(got))
			}
		})
	}
}

func TestTerminalStatuses(t *testing.T) {
	for _, s := range []ContractStatus{StatusSigned, StatusExpired, StatusCancelled} {
		assert.True(t, s.IsTerminal(), s)
		assert.False(t, s.CanTransitionTo(StatusCancelled), s)
	}
	for _, s := range NonTerminalStatuses {
		assert.False(t, s.IsTerminal(), s)
		assert.True(t, s.CanTransitionTo(StatusCancelled), s)
		assert.True(t, s.CanTransitionTo(StatusExpired), s)
	}
}

func TestNewContractStatus(t *testing.T) {
	s, err := NewContractStatus("admin_signed")
	assert.NoError(t, err)
	assert.Equal(t, StatusAdminSigned, s)

	_, err = NewContractStatus("archived")
	assert.Error(t, err)
}

func TestPartyCounterparty(t *testing.T) {
	assert.Equal(t, PartyAdmin, PartySupplier.Counterparty())
	assert.Equal(t, PartySupplier, PartyAdmin.Counterparty())
	assert.False(t, Party("auditor").IsValid())
}
