package pgsql

import (
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/apperrors"
)

func TestMapError(t *testing.T) {
	assert.NoError(t, mapError(nil, "noop"))

	err := mapError(pgx.ErrNoRows, "failed to find voucher v1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusCode(err))

	err = mapError(&pgconn.PgError{Code: "23505", ConstraintName: "ledger_entries_voucher_line_key"}, "failed to insert")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Contains(t, err.Error(), "ledger_entries_voucher_line_key")

	err = mapError(&pgconn.PgError{Code: "23503"}, "failed to insert")
	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Equal(t, http.StatusInternalServerError, apperrors.StatusCode(err))

	invalid := apperrors.NewAppError(http.StatusConflict, "voucher v1 is not a draft", apperrors.ErrInvalidState)
	err = mapError(invalid, "failed to update voucher v1")
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	assert.Equal(t, http.StatusConflict, apperrors.StatusCode(err))
	assert.Equal(t, invalid.Error(), err.Error())
}

func TestOptionalDate(t *testing.T) {
	assert.Nil(t, optionalDate(nil))

	ts := time.Date(2025, time.June, 3, 17, 45, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.June, 3, 0, 0, 0, 0, time.UTC), optionalDate(&ts))
}
