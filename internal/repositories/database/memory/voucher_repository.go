package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/apperrors"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	portsrepo "github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/ports/repositories"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/utils/pagination"
)

// VoucherRepository stores vouchers with their lines.
type VoucherRepository struct {
	acc accessor
}

func copyVoucher(v domain.Voucher) domain.Voucher {
	if v.Lines != nil {
		lines := make([]domain.VoucherLine, len(v.Lines))
		copy(lines, v.Lines)
		v.Lines = lines
	}
	return v
}

func header(v domain.Voucher) domain.Voucher {
	v.Lines = nil
	return v
}

func (r *VoucherRepository) FindVoucherByID(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	var out *domain.Voucher
	err := r.acc.read(func(st *state) error {
		v, ok := st.vouchers[voucherID]
		if !ok {
			return fmt.Errorf("voucher %s: %w", voucherID, apperrors.ErrNotFound)
		}
		c := copyVoucher(v)
		out = &c
		return nil
	})
	return out, err
}

func (r *VoucherRepository) FindVouchersByIDs(ctx context.Context, voucherIDs []string) (map[string]domain.Voucher, error) {
	out := make(map[string]domain.Voucher, len(voucherIDs))
	err := r.acc.read(func(st *state) error {
		for _, id := range voucherIDs {
			if v, ok := st.vouchers[id]; ok {
				out[id] = header(v)
			}
		}
		return nil
	})
	return out, err
}

func (r *VoucherRepository) ListVouchers(ctx context.Context, businessID string, filter domain.VoucherFilter, limit int, nextToken *string) ([]domain.Voucher, *string, error) {
	var cursor *pagination.Cursor
	if nextToken != nil && *nextToken != "" {
		c, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &c
	}

	var matched []domain.Voucher
	err := r.acc.read(func(st *state) error {
		for _, v := range st.vouchers {
			if v.BusinessID != businessID || v.Status == domain.VoucherDeleted || !matchesFilter(v, filter) {
				continue
			}
			if cursor != nil && !cursor.Before(v.VoucherDate, v.CreatedAt, v.VoucherID) {
				continue
			}
			matched = append(matched, header(v))
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		return pagination.Cursor{VoucherDate: a.VoucherDate, CreatedAt: a.CreatedAt, VoucherID: a.VoucherID}.
			Before(b.VoucherDate, b.CreatedAt, b.VoucherID)
	})

	if len(matched) <= limit {
		return matched, nil, nil
	}
	page := matched[:limit]
	last := page[len(page)-1]
	token := pagination.EncodeToken(pagination.Cursor{VoucherDate: last.VoucherDate, CreatedAt: last.CreatedAt, VoucherID: last.VoucherID})
	return page, &token, nil
}

func matchesFilter(v domain.Voucher, f domain.VoucherFilter) bool {
	if f.VoucherType != nil && v.VoucherType != *f.VoucherType {
		return false
	}
	if f.Status != nil && v.Status != *f.Status {
		return false
	}
	if f.FromDate != nil && v.VoucherDate.Before(domain.DateOnly(*f.FromDate)) {
		return false
	}
	if f.ToDate != nil && v.VoucherDate.After(domain.DateOnly(*f.ToDate)) {
		return false
	}
	return true
}

func (r *VoucherRepository) ListPostedWithoutLedger(ctx context.Context, limit int) ([]domain.Voucher, error) {
	var out []domain.Voucher
	err := r.acc.read(func(st *state) error {
		posted := make(map[string]struct{})
		for _, e := range st.entries {
			posted[e.VoucherID] = struct{}{}
		}
		for _, v := range st.vouchers {
			if v.Status != domain.VoucherPosted {
				continue
			}
			if _, ok := posted[v.VoucherID]; ok {
				continue
			}
			out = append(out, header(v))
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool {
		if !out[i].LastUpdatedAt.Equal(out[j].LastUpdatedAt) {
			return out[i].LastUpdatedAt.Before(out[j].LastUpdatedAt)
		}
		return out[i].VoucherID < out[j].VoucherID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, err
}

// GenerateVoucherNumber counts every voucher of the business/type/year,
// deleted ones included, so numbers are never reused.
func (r *VoucherRepository) GenerateVoucherNumber(ctx context.Context, businessID string, voucherType domain.VoucherType, voucherDate time.Time) (string, error) {
	var number string
	err := r.acc.read(func(st *state) error {
		count := 0
		for _, v := range st.vouchers {
			if v.BusinessID == businessID && v.VoucherType == voucherType && v.VoucherDate.Year() == voucherDate.Year() {
				count++
			}
		}
		number = domain.FormatVoucherNumber(voucherType, voucherDate.Year(), count+1)
		return nil
	})
	return number, err
}

func (r *VoucherRepository) SaveVoucher(ctx context.Context, voucher domain.Voucher) error {
	return r.acc.write(func(st *state) error {
		if _, ok := st.vouchers[voucher.VoucherID]; ok {
			return fmt.Errorf("voucher %s: %w", voucher.VoucherID, apperrors.ErrDuplicate)
		}
		for _, v := range st.vouchers {
			if v.BusinessID == voucher.BusinessID && v.VoucherNumber == voucher.VoucherNumber {
				return fmt.Errorf("voucher number %s: %w", voucher.VoucherNumber, apperrors.ErrDuplicate)
			}
		}
		st.vouchers[voucher.VoucherID] = copyVoucher(voucher)
		return nil
	})
}

func (r *VoucherRepository) UpdateVoucher(ctx context.Context, voucher domain.Voucher) error {
	return r.acc.write(func(st *state) error {
		current, ok := st.vouchers[voucher.VoucherID]
		if !ok {
			return fmt.Errorf("voucher %s: %w", voucher.VoucherID, apperrors.ErrNotFound)
		}
		if current.Status != domain.VoucherDraft {
			return fmt.Errorf("voucher %s: %w", voucher.VoucherID, apperrors.ErrInvalidState)
		}
		voucher.Status = current.Status
		voucher.VoucherNumber = current.VoucherNumber
		voucher.CreatedAt, voucher.CreatedBy = current.CreatedAt, current.CreatedBy
		st.vouchers[voucher.VoucherID] = copyVoucher(voucher)
		return nil
	})
}

func (r *VoucherRepository) SetPosted(ctx context.Context, voucherID string, postedBy string, postedAt time.Time) (bool, error) {
	var ok bool
	err := r.acc.write(func(st *state) error {
		v, found := st.vouchers[voucherID]
		if !found || v.Status != domain.VoucherDraft {
			return nil
		}
		v.Status = domain.VoucherPosted
		v.PostedAt = &postedAt
		v.PostedBy = &postedBy
		v.LastUpdatedAt, v.LastUpdatedBy = postedAt, postedBy
		st.vouchers[voucherID] = v
		ok = true
		return nil
	})
	return ok, err
}

func (r *VoucherRepository) MarkDeleted(ctx context.Context, voucherID string, deletedBy string, deletedAt time.Time) (bool, error) {
	var ok bool
	err := r.acc.write(func(st *state) error {
		v, found := st.vouchers[voucherID]
		if !found || v.Status != domain.VoucherDraft {
			return nil
		}
		v.Status = domain.VoucherDeleted
		v.DeletedAt = &deletedAt
		v.LastUpdatedAt, v.LastUpdatedBy = deletedAt, deletedBy
		st.vouchers[voucherID] = v
		ok = true
		return nil
	})
	return ok, err
}

func (r *VoucherRepository) RecordPostingError(ctx context.Context, voucherID string, message *string) error {
	return r.acc.write(func(st *state) error {
		v, ok := st.vouchers[voucherID]
		if !ok {
			return fmt.Errorf("voucher %s: %w", voucherID, apperrors.ErrNotFound)
		}
		if message != nil {
			msg := *message
			message = &msg
		}
		v.LedgerPostingError = message
		st.vouchers[voucherID] = v
		return nil
	})
}

var _ portsrepo.VoucherRepositoryFacade = (*VoucherRepository)(nil)
