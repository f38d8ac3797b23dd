package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney_DefaultsCurrency(t *testing.T) {
	m := NewMoney(12050, "")
	assert.Equal(t, "EUR", m.Currency())
	assert.Equal(t, int64(12050), m.AmountInCents())
	assert.Equal(t, "120.50 EUR", m.String())

	assert.Equal(t, "USD", NewMoney(1, " usd ").Currency())
}

func TestMoney_Add(t *testing.T) {
	sum, err := NewMoney(100, "EUR").Add(NewMoney(250, "EUR"))
	require.NoError(t, err)
	assert.True(t, sum.Equals(NewMoney(350, "EUR")))

	_, err = NewMoney(100, "EUR").Add(NewMoney(100, "USD"))
	assert.Error(t, err)
}

func TestMoney_Sign(t *testing.T) {
	assert.True(t, NewMoney(1, "").IsPositive())
	assert.False(t, NewMoney(0, "").IsPositive())
	assert.True(t, NewMoney(-1, "").IsNegative())
}
