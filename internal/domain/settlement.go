package domain

import "github.com/shopspring/decimal"

// DefaultCommissionRate комиссия пункта выдачи по умолчанию, в процентах.
var DefaultCommissionRate = decimal.NewFromInt(5)

var hundred = decimal.NewFromInt(100)

// Settlement распределение суммы эскроу при подтверждении доставки.
type Settlement struct {
	// SellerCredit вся сумма эскроу, зачисляемая продавцу.
	SellerCredit decimal.Decimal
	// Commission часть суммы, списываемая с продавца в пользу владельца пункта выдачи.
	Commission decimal.Decimal
}

// SellerNet итог для продавца после вычета комиссии.
func (s Settlement) SellerNet() decimal.Decimal {
	return s.SellerCredit.Sub(s.Commission)
}

// NewSettlement считает выплату по эскроу. Без пункта выдачи (ratePercent == nil) комиссия нулевая.
// Комиссия округляется до копеек (2 знака) и никогда не превышает сумму эскроу.
func NewSettlement(amount decimal.Decimal, ratePercent *decimal.Decimal) Settlement {
	s := Settlement{SellerCredit: amount, Commission: decimal.Zero}
	if ratePercent == nil || !ratePercent.IsPositive() {
		return s
	}
	commission := amount.Mul(*ratePercent).Div(hundred).Round(2) //nolint:mnd
	if commission.GreaterThan(amount) {
		commission = amount
	}
	s.Commission = commission
	return s
}
