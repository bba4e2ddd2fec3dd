package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Cursor is the position of the last voucher on a page. Listings are ordered
// newest first by (voucher date, created at, voucher id).
type Cursor struct {
	VoucherDate time.Time
	CreatedAt   time.Time
	VoucherID   string
}

// EncodeToken creates a base64 encoded token from a cursor.
func EncodeToken(c Cursor) string {
	tokenStr := fmt.Sprintf("%s|%s|%s", c.VoucherDate.Format(timeFormat), c.CreatedAt.Format(timeFormat), c.VoucherID)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into a cursor.
func DecodeToken(token string) (Cursor, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 || parts[2] == "" {
		return Cursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	voucherDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (voucher date parse): %w", err)
	}
	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return Cursor{VoucherDate: voucherDate, CreatedAt: createdAt, VoucherID: parts[2]}, nil
}

// Before reports whether a row with the given keys comes after the cursor in
// newest-first order, i.e. belongs on the next page.
func (c Cursor) Before(voucherDate, createdAt time.Time, voucherID string) bool {
	if !voucherDate.Equal(c.VoucherDate) {
		return voucherDate.Before(c.VoucherDate)
	}
	if !createdAt.Equal(c.CreatedAt) {
		return createdAt.Before(c.CreatedAt)
	}
	return voucherID < c.VoucherID
}
