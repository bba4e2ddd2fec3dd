package mapping

import (
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/models"
)

// ToModelVoucher converts a domain Voucher header to a model Voucher. Lines are mapped separately.
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:          d.VoucherID,
		BusinessID:         d.BusinessID,
		VoucherNumber:      d.VoucherNumber,
		VoucherType:        string(d.VoucherType),
		VoucherDate:        domain.DateOnly(d.VoucherDate),
		Status:             string(d.Status),
		CurrencyCode:       d.CurrencyCode,
		ExchangeRate:       d.ExchangeRate,
		Reference:          d.Reference,
		Narration:          d.Narration,
		CostCenterID:       d.CostCenterID,
		ProjectID:          d.ProjectID,
		TotalAmount:        d.TotalAmount,
		TaxAmount:          d.TaxAmount,
		DiscountAmount:     d.DiscountAmount,
		RoundOff:           d.RoundOff,
		NetAmount:          d.NetAmount,
		PostedAt:           d.PostedAt,
		PostedBy:           d.PostedBy,
		DeletedAt:          d.DeletedAt,
		LedgerPostingError: d.LedgerPostingError,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher and its lines to a domain Voucher
func ToDomainVoucher(m models.Voucher, lines []models.VoucherLine) domain.Voucher {
	v := domain.Voucher{
		VoucherID:     m.VoucherID,
		BusinessID:    m.BusinessID,
		VoucherNumber: m.VoucherNumber,
		VoucherType:   domain.VoucherType(m.VoucherType),
		VoucherDate:   domain.DateOnly(m.VoucherDate),
		Status:        domain.VoucherStatus(m.Status),
		CurrencyCode:  m.CurrencyCode,
		ExchangeRate:  m.ExchangeRate,
		Reference:     m.Reference,
		Narration:     m.Narration,
		CostCenterID:  m.CostCenterID,
		ProjectID:     m.ProjectID,
		VoucherTotals: domain.VoucherTotals{
			TotalAmount:    m.TotalAmount,
			TaxAmount:      m.TaxAmount,
			DiscountAmount: m.DiscountAmount,
			RoundOff:       m.RoundOff,
			NetAmount:      m.NetAmount,
		},
		PostedAt:           m.PostedAt,
		PostedBy:           m.PostedBy,
		DeletedAt:          m.DeletedAt,
		LedgerPostingError: m.LedgerPostingError,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
	if lines != nil {
		v.Lines = ToDomainVoucherLineSlice(lines)
	}
	return v
}

// ToModelVoucherLine converts a domain VoucherLine to a model VoucherLine
func ToModelVoucherLine(d domain.VoucherLine) models.VoucherLine {
	return models.VoucherLine{
		LineID:         d.LineID,
		VoucherID:      d.VoucherID,
		LineNumber:     d.LineNumber,
		AccountID:      d.AccountID,
		Description:    d.Description,
		Debit:          d.Debit,
		Credit:         d.Credit,
		LineAmount:     d.LineAmount,
		TaxAmount:      d.TaxAmount,
		DiscountAmount: d.DiscountAmount,
		CostCenterID:   d.CostCenterID,
		ProjectID:      d.ProjectID,
	}
}

// ToDomainVoucherLine converts a model VoucherLine to a domain VoucherLine
func ToDomainVoucherLine(m models.VoucherLine) domain.VoucherLine {
	return domain.VoucherLine{
		LineID:         m.LineID,
		VoucherID:      m.VoucherID,
		LineNumber:     m.LineNumber,
		AccountID:      m.AccountID,
		Description:    m.Description,
		Debit:          m.Debit,
		Credit:         m.Credit,
		LineAmount:     m.LineAmount,
		TaxAmount:      m.TaxAmount,
		DiscountAmount: m.DiscountAmount,
		CostCenterID:   m.CostCenterID,
		ProjectID:      m.ProjectID,
	}
}

// ToDomainVoucherLineSlice converts a slice of model VoucherLines to a slice of domain VoucherLines
func ToDomainVoucherLineSlice(ms []models.VoucherLine) []domain.VoucherLine {
	ds := make([]domain.VoucherLine, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucherLine(m)
	}
	return ds
}
