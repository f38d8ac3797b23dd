package notification

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParams() NewNotificationParams {
	return NewNotificationParams{
		UserID:     "usr_1",
		CompanyID:  "cmp_1",
		Type:       TypeContractSigned,
		Title:      "Contract signed",
		Message:    "The supplier signed the contract",
		TargetID:   "ctr_1",
		TargetType: "contract",
		Now:        time.Now(),
	}
}

func TestNewNotification(t *testing.T) {
	n, err := NewNotification(validParams())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(n.ID(), "ntf_"))
	assert.False(t, n.IsRead())
	assert.Nil(t, n.ReadAt())
	assert.Equal(t, TypeContractSigned, n.Type())
}

func TestNewNotification_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *NewNotificationParams)
	}{
		{"missing user", func(p *NewNotificationParams) { p.UserID = "" }},
		{"unknown type", func(p *NewNotificationParams) { p.Type = "invoice_paid" }},
		{"empty title", func(p *NewNotificationParams) { p.Title = "" }},
		{"long title", func(p *NewNotificationParams) { p.Title = strings.Repeat("x", 201) }},
		{"long message", func(p *NewNotificationParams) { p.Message = strings.Repeat("x", 5001) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validParams()
			tt.mutate(&p)
			_, err := NewNotification(p)
			assert.Error(t, err)
		})
	}
}

func TestMarkAsRead(t *testing.T) {
	n, err := NewNotification(validParams())
	require.NoError(t, err)

	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	n.MarkAsRead(first)
	assert.True(t, n.IsRead())
	assert.Equal(t, first, *n.ReadAt())

	n.MarkAsRead(first.Add(time.Hour))
	assert.Equal(t, first, *n.ReadAt())
}

func TestNewType(t *testing.T) {
	typ, err := NewType("document_rejected")
	require.NoError(t, err)
	assert.Equal(t, TypeDocumentRejected, typ)

	_, err = NewType("invoice_paid")
	assert.Error(t, err)
}

func TestNewCreatedEvent(t *testing.T) {
	n, err := NewNotification(validParams())
	require.NoError(t, err)

	evt := NewCreatedEvent(n, "jane@acme.test", "Jane Doe")
	assert.Equal(t, EventTypeCreated, evt.GetEventType())
	assert.Equal(t, n.ID(), evt.GetAggregateID())
	assert.Equal(t, "jane@acme.test", evt.RecipientEmail)
	assert.Equal(t, "ctr_1", evt.TargetID)
}
