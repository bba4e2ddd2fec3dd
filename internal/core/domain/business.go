package domain

// Business is the tenant every voucher, account and ledger entry belongs to.
type Business struct {
	BusinessID       string `json:"businessID"`
	Name             string `json:"name"`
	BaseCurrencyCode string `json:"baseCurrencyCode"`
	IsActive         bool   `json:"isActive"`
	AuditFields
}
