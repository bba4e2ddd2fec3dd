package accounting

import (
	"github.com/encryptz-ERP-Solutions/encryptzAccountzERP-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	// AmountPlaces is the fractional precision of every stored amount.
	AmountPlaces int32 = 2
	// RatePlaces is the fractional precision of exchange rates.
	RatePlaces int32 = 6
)

// BalanceTolerance absorbs rounding noise when comparing debit and credit totals.
var BalanceTolerance = decimal.New(1, -2)

// CalculateVoucherTotals derives header totals from the lines.
// gross = total + tax - discount; net is gross rounded to a whole unit
// (half away from zero) and roundOff = net - gross.
func CalculateVoucherTotals(lines []domain.VoucherLine) domain.VoucherTotals {
	total, tax, discount := decimal.Zero, decimal.Zero, decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineAmount)
		tax = tax.Add(l.TaxAmount)
		discount = discount.Add(l.DiscountAmount)
	}
	gross := total.Add(tax).Sub(discount)
	net := gross.Round(0)
	return domain.VoucherTotals{
		TotalAmount:    total.Round(AmountPlaces),
		TaxAmount:      tax.Round(AmountPlaces),
		DiscountAmount: discount.Round(AmountPlaces),
		RoundOff:       net.Sub(gross).Round(AmountPlaces),
		NetAmount:      net.Round(AmountPlaces),
	}
}

// SumLines returns the debit and credit totals of voucher lines.
func SumLines(lines []domain.VoucherLine) domain.Movement {
	var m domain.Movement
	for _, l := range lines {
		m.Debit = m.Debit.Add(l.Debit)
		m.Credit = m.Credit.Add(l.Credit)
	}
	return m
}

// SumEntries returns the debit and credit totals of ledger entries.
func SumEntries(entries []domain.LedgerEntry) domain.Movement {
	var m domain.Movement
	for _, e := range entries {
		m = m.Add(e)
	}
	return m
}

// ToBase converts a transaction-currency amount to base currency.
func ToBase(amount, exchangeRate decimal.Decimal) decimal.Decimal {
	return amount.Mul(exchangeRate).Round(AmountPlaces)
}

// ExceedsTolerance reports whether |diff| is strictly greater than the tolerance.
func ExceedsTolerance(diff decimal.Decimal) bool {
	return diff.Abs().GreaterThan(BalanceTolerance)
}

// WithinTolerance reports whether |diff| is strictly below the tolerance.
// Trial balances use this stricter form.
func WithinTolerance(diff decimal.Decimal) bool {
	return diff.Abs().LessThan(BalanceTolerance)
}

// SideOf classifies a signed balance. The rule is uniform across account
// types: non-negative is Dr, negative is Cr.
func SideOf(balance decimal.Decimal) domain.BalanceSide {
	if balance.IsNegative() {
		return domain.SideCredit
	}
	return domain.SideDebit
}

// SplitBalance places |balance| in the debit or credit column according to SideOf.
func SplitBalance(balance decimal.Decimal) (debit, credit decimal.Decimal) {
	if SideOf(balance) == domain.SideCredit {
		return decimal.Zero, balance.Abs()
	}
	return balance, decimal.Zero
}
