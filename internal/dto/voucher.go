package dto

import (
	"time"

	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VoucherLineRequest is one line of a create or update request.
// LineAmount defaults to Debit when omitted.
type VoucherLineRequest struct {
	AccountID      string           `json:"accountID" binding:"required"`
	Description    string           `json:"description"`
	Debit          decimal.Decimal  `json:"debit"`
	Credit         decimal.Decimal  `json:"credit"`
	LineAmount     *decimal.Decimal `json:"lineAmount,omitempty"`
	TaxAmount      decimal.Decimal  `json:"taxAmount"`
	DiscountAmount decimal.Decimal  `json:"discountAmount"`
	CostCenterID   *string          `json:"costCenterID,omitempty"`
	ProjectID      *string          `json:"projectID,omitempty"`
}

// CreateVoucherRequest defines the data needed to create a DRAFT voucher.
type CreateVoucherRequest struct {
	VoucherType  domain.VoucherType   `json:"voucherType" binding:"required,vouchertype"`
	VoucherDate  time.Time            `json:"voucherDate" binding:"required"`
	CurrencyCode string               `json:"currencyCode" binding:"omitempty,len=3"`
	ExchangeRate *decimal.Decimal     `json:"exchangeRate,omitempty"` // defaults to 1
	Reference    string               `json:"reference" binding:"max=100"`
	Narration    string               `json:"narration"`
	CostCenterID *string              `json:"costCenterID,omitempty"`
	ProjectID    *string              `json:"projectID,omitempty"`
	Lines        []VoucherLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// UpdateVoucherRequest replaces the editable header fields and all lines of a DRAFT voucher.
// The voucher type is fixed at creation.
type UpdateVoucherRequest struct {
	VoucherDate  time.Time            `json:"voucherDate" binding:"required"`
	CurrencyCode string               `json:"currencyCode" binding:"omitempty,len=3"`
	ExchangeRate *decimal.Decimal     `json:"exchangeRate,omitempty"`
	Reference    string               `json:"reference" binding:"max=100"`
	Narration    string               `json:"narration"`
	CostCenterID *string              `json:"costCenterID,omitempty"`
	ProjectID    *string              `json:"projectID,omitempty"`
	Lines        []VoucherLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ListVouchersParams defines query parameters for listing vouchers.
type ListVouchersParams struct {
	VoucherType *domain.VoucherType   `form:"type" binding:"omitempty,vouchertype"`
	Status      *domain.VoucherStatus `form:"status" binding:"omitempty,oneof=DRAFT POSTED"`
	FromDate    string                `form:"fromDate"`
	ToDate      string                `form:"toDate"`
	Limit       int                   `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken   *string               `form:"nextToken"`
}

// VoucherLineResponse defines the data returned for a voucher line.
type VoucherLineResponse struct {
	LineID         string          `json:"lineID"`
	LineNumber     int             `json:"lineNumber"`
	AccountID      string          `json:"accountID"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	LineAmount     decimal.Decimal `json:"lineAmount"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	DiscountAmount decimal.Decimal `json:"discountAmount"`
	CostCenterID   *string         `json:"costCenterID,omitempty"`
	ProjectID      *string         `json:"projectID,omitempty"`
}

// VoucherResponse defines the data returned for a voucher.
type VoucherResponse struct {
	VoucherID          string                `json:"voucherID"`
	BusinessID         string                `json:"businessID"`
	VoucherNumber      string                `json:"voucherNumber"`
	VoucherType        domain.VoucherType    `json:"voucherType"`
	VoucherDate        string                `json:"voucherDate"`
	Status             domain.VoucherStatus  `json:"status"`
	CurrencyCode       string                `json:"currencyCode"`
	ExchangeRate       decimal.Decimal       `json:"exchangeRate"`
	Reference          string                `json:"reference"`
	Narration          string                `json:"narration"`
	CostCenterID       *string               `json:"costCenterID,omitempty"`
	ProjectID          *string               `json:"projectID,omitempty"`
	TotalAmount        decimal.Decimal       `json:"totalAmount"`
	TaxAmount          decimal.Decimal       `json:"taxAmount"`
	DiscountAmount     decimal.Decimal       `json:"discountAmount"`
	RoundOff           decimal.Decimal       `json:"roundOff"`
	NetAmount          decimal.Decimal       `json:"netAmount"`
	PostedAt           *time.Time            `json:"postedAt,omitempty"`
	PostedBy           *string               `json:"postedBy,omitempty"`
	LedgerPostingError *string               `json:"ledgerPostingError,omitempty"`
	Lines              []VoucherLineResponse `json:"lines,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	CreatedBy          string                `json:"createdBy"`
	LastUpdatedAt      time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy      string                `json:"lastUpdatedBy"`
}

// ListVouchersResponse wraps a page of vouchers.
type ListVouchersResponse struct {
	Vouchers  []VoucherResponse `json:"vouchers"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// PostVoucherResponse carries the voucher after posting together with the ledger outcome.
type PostVoucherResponse struct {
	Voucher VoucherResponse       `json:"voucher"`
	Posting PostingResultResponse `json:"posting"`
}

// ToVoucherResponse converts a domain.Voucher to VoucherResponse DTO.
func ToVoucherResponse(v *domain.Voucher) VoucherResponse {
	resp := VoucherResponse{
		VoucherID:          v.VoucherID,
		BusinessID:         v.BusinessID,
		VoucherNumber:      v.VoucherNumber,
		VoucherType:        v.VoucherType,
		VoucherDate:        v.VoucherDate.Format(domain.DateLayout),
		Status:             v.Status,
		CurrencyCode:       v.CurrencyCode,
		ExchangeRate:       v.ExchangeRate,
		Reference:          v.Reference,
		Narration:          v.Narration,
		CostCenterID:       v.CostCenterID,
		ProjectID:          v.ProjectID,
		TotalAmount:        v.TotalAmount,
		TaxAmount:          v.TaxAmount,
		DiscountAmount:     v.DiscountAmount,
		RoundOff:           v.RoundOff,
		NetAmount:          v.NetAmount,
		PostedAt:           v.PostedAt,
		PostedBy:           v.PostedBy,
		LedgerPostingError: v.LedgerPostingError,
		CreatedAt:          v.CreatedAt,
		CreatedBy:          v.CreatedBy,
		LastUpdatedAt:      v.LastUpdatedAt,
		LastUpdatedBy:      v.LastUpdatedBy,
	}
	if len(v.Lines) > 0 {
		resp.Lines = make([]VoucherLineResponse, len(v.Lines))
		for i, l := range v.Lines {
			resp.Lines[i] = VoucherLineResponse{
				LineID:         l.LineID,
				LineNumber:     l.LineNumber,
				AccountID:      l.AccountID,
				Description:    l.Description,
				Debit:          l.Debit,
				Credit:         l.Credit,
				LineAmount:     l.LineAmount,
				TaxAmount:      l.TaxAmount,
				DiscountAmount: l.DiscountAmount,
				CostCenterID:   l.CostCenterID,
				ProjectID:      l.ProjectID,
			}
		}
	}
	return resp
}

// ToVoucherResponses converts a slice of domain.Voucher to []VoucherResponse.
func ToVoucherResponses(vouchers []domain.Voucher) []VoucherResponse {
	responses := make([]VoucherResponse, len(vouchers))
	for i := range vouchers {
		responses[i] = ToVoucherResponse(&vouchers[i])
	}
	return responses
}
