package main

import (
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/repositories/database/memory"
)

const demoBusinessID = "demo"

// seedDemoData gives the in-memory driver a business and a small chart of accounts to post against.
func seedDemoData(store *memory.Store) {
	store.SeedBusiness(domain.Business{BusinessID: demoBusinessID, Name: "Demo Traders", BaseCurrencyCode: "INR", IsActive: true})

	for _, acc := range []domain.Account{
		{AccountID: "demo-cash", Code: "1000", Name: "Cash", AccountType: domain.Asset},
		{AccountID: "demo-bank", Code: "1010", Name: "Bank", AccountType: domain.Asset},
		{AccountID: "demo-receivables", Code: "1100", Name: "Accounts Receivable", AccountType: domain.Asset},
		{AccountID: "demo-payables", Code: "2000", Name: "Accounts Payable", AccountType: domain.Liability},
		{AccountID: "demo-capital", Code: "3000", Name: "Owner's Capital", AccountType: domain.Equity},
		{AccountID: "demo-sales", Code: "4000", Name: "Sales", AccountType: domain.Revenue},
		{AccountID: "demo-purchases", Code: "5000", Name: "Purchases", AccountType: domain.Expense},
		{AccountID: "demo-rent", Code: "5100", Name: "Rent", AccountType: domain.Expense},
	} {
		acc.BusinessID = demoBusinessID
		acc.IsActive = true
		store.SeedAccount(acc)
	}
}
