package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUTC(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	nowFunc = func() time.Time { return fixed }
	t.Cleanup(func() { nowFunc = time.Now })

	now := NowUTC()
	assert.Equal(t, time.UTC, now.Location())
	assert.Equal(t, 11, now.Hour())
}

func TestAddDays(t *testing.T) {
	start := time.Date(2025, 1, 30, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), AddDays(start, 30))
}

func TestParseDateInBizTimezone(t *testing.T) {
	got, err := ParseDateInBizTimezone("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-01", FormatDate(got))

	_, err = ParseDateInBizTimezone("01/06/2025")
	assert.Error(t, err)
}
