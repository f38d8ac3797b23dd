package document

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	d, err := NewDocument(NewDocumentParams{
		CompanyID:  "cmp_1",
		SupplierID: "sup_1",
		FileName:   "kbis.pdf",
		FilePath:   "documents/sup_1/x.pdf",
		UploadedBy: "usr_1",
		Now:        time.Now(),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(d.ID(), "doc_"))
	assert.Equal(t, "kbis.pdf", d.Name())
	assert.Equal(t, "other", d.Category())
	assert.Equal(t, StatusPending, d.Status())
}

func TestReview(t *testing.T) {
	d, err := NewDocument(NewDocumentParams{CompanyID: "cmp_1", SupplierID: "sup_1", FilePath: "p", Now: time.Now()})
	require.NoError(t, err)

	now := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, d.Review(StatusRejected, "expired certificate", "usr_admin", now))
	assert.Equal(t, StatusRejected, d.Status())
	assert.Equal(t, "expired certificate", d.ValidationNotes())
	assert.Equal(t, "usr_admin", d.ValidatedBy())
	require.NotNil(t, d.ValidatedAt())
	assert.Equal(t, now, *d.ValidatedAt())

	require.NoError(t, d.Review(StatusPending, "", "usr_admin", now))
	assert.Empty(t, d.ValidatedBy())
	assert.Nil(t, d.ValidatedAt())

	assert.ErrorIs(t, d.Review("lost", "", "usr_admin", now), ErrInvalidStatus)
}
