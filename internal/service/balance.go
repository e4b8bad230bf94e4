package service

import "github.com/shopspring/decimal"

// requiredSavingsRate is the share of the deposit that must sit in savings before the
// deposit can be withdrawn.
var requiredSavingsRate = decimal.RequireFromString("0.015")

var hundred = decimal.NewFromInt(100)

type BalanceValidation struct {
	CanWithdraw     bool    `json:"can_withdraw"`
	RequiredSavings float64 `json:"required_savings"`
	CurrentSavings  int64   `json:"current_savings"`
	Shortage        float64 `json:"shortage"`
	Percentage      float64 `json:"percentage"`
}

// ComputeBalanceValidation applies the withdrawal rule to a savings and deposit balance.
// A zero deposit yields 100 percent.
func ComputeBalanceValidation(tabungan, deposito int64) BalanceValidation {
	required := decimal.NewFromInt(deposito).Mul(requiredSavingsRate)
	current := decimal.NewFromInt(tabungan)

	shortage := decimal.Max(decimal.Zero, required.Sub(current))
	percentage := hundred
	if required.IsPositive() {
		percentage = decimal.Min(hundred, current.Div(required).Mul(hundred))
	}
	return BalanceValidation{
		CanWithdraw:     current.GreaterThanOrEqual(required),
		RequiredSavings: required.InexactFloat64(),
		CurrentSavings:  tabungan,
		Shortage:        shortage.InexactFloat64(),
		Percentage:      percentage.InexactFloat64(),
	}
}
