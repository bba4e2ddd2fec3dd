package mapping

import (
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:              d.EntryID,
		BusinessID:           d.BusinessID,
		VoucherID:            d.VoucherID,
		SourceLineID:         d.SourceLineID,
		EntryDate:            domain.DateOnly(d.EntryDate),
		AccountID:            d.AccountID,
		Debit:                d.Debit,
		Credit:               d.Credit,
		CurrencyCode:         d.CurrencyCode,
		ExchangeRate:         d.ExchangeRate,
		BaseDebit:            d.BaseDebit,
		BaseCredit:           d.BaseCredit,
		CostCenterID:         d.CostCenterID,
		ProjectID:            d.ProjectID,
		ReconciliationStatus: string(d.ReconciliationStatus),
		CreatedAt:            d.CreatedAt,
		CreatedBy:            d.CreatedBy,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:              m.EntryID,
		BusinessID:           m.BusinessID,
		VoucherID:            m.VoucherID,
		SourceLineID:         m.SourceLineID,
		EntryDate:            domain.DateOnly(m.EntryDate),
		AccountID:            m.AccountID,
		Debit:                m.Debit,
		Credit:               m.Credit,
		CurrencyCode:         m.CurrencyCode,
		ExchangeRate:         m.ExchangeRate,
		BaseDebit:            m.BaseDebit,
		BaseCredit:           m.BaseCredit,
		CostCenterID:         m.CostCenterID,
		ProjectID:            m.ProjectID,
		ReconciliationStatus: domain.ReconciliationStatus(m.ReconciliationStatus),
		CreatedAt:            m.CreatedAt,
		CreatedBy:            m.CreatedBy,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to a slice of domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}
