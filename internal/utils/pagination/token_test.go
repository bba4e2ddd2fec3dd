package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	// Standard date/time values
	cursor := Cursor{
		VoucherDate: time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC),
		VoucherID:   "3f1c2a",
	}

	token := EncodeToken(cursor)
	assert.NotEmpty(t, token, "Token should not be empty")

	decoded, err := DecodeToken(token)
	require.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, cursor, decoded, "Cursor should match after decode")

	// Zero time values
	zero := Cursor{VoucherID: "v"}
	decodedZero, err := DecodeToken(EncodeToken(zero))
	assert.NoError(t, err, "Decoding zero time should not return an error")
	assert.Equal(t, zero, decodedZero)

	// Current time values
	now := time.Now().UTC()
	decodedNow, err := DecodeToken(EncodeToken(Cursor{VoucherDate: now, CreatedAt: now, VoucherID: "x"}))
	assert.NoError(t, err)
	assert.True(t, now.Equal(decodedNow.VoucherDate), "Current date should match after decode")
	assert.True(t, now.Equal(decodedNow.CreatedAt), "Current time should match after decode")
}

func TestDecodeTokenError(t *testing.T) {
	// Invalid base64
	_, err := DecodeToken("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	// Missing separators
	_, err = DecodeToken(base64.StdEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Missing voucher id
	_, err = DecodeToken(base64.StdEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|2023-05-15T00:00:00Z|")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	// Invalid date format
	_, err = DecodeToken(base64.StdEncoding.EncodeToString([]byte("notadate|2023-05-15T14:30:45.123456789Z|v1")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "voucher date parse")

	// Invalid created_at format
	_, err = DecodeToken(base64.StdEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|later|v1")))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestCursorBefore(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	created := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	c := Cursor{VoucherDate: day, CreatedAt: created, VoucherID: "m"}

	assert.True(t, c.Before(day.AddDate(0, 0, -1), created.Add(time.Hour), "z"), "earlier voucher date")
	assert.False(t, c.Before(day.AddDate(0, 0, 1), created, "a"), "later voucher date")
	assert.True(t, c.Before(day, created.Add(-time.Minute), "z"), "same date, created earlier")
	assert.False(t, c.Before(day, created.Add(time.Minute), "a"), "same date, created later")
	assert.True(t, c.Before(day, created, "a"), "tie broken by id")
	assert.False(t, c.Before(day, created, "m"), "the cursor row itself")
}
