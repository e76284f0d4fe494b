package pricing

import "github.com/shopspring/decimal"

// Input collects everything the summary depends on.
type Input struct {
	Period         Period
	DailyRate      decimal.Decimal
	SurchargeTotal decimal.Decimal
	Deposit        decimal.Decimal
	Discount       decimal.Decimal
	PaidNow        decimal.Decimal
}

// Summary aggregates the derived totals of a contract draft.
type Summary struct {
	Days            int             `json:"rental_days"`
	DailyRate       decimal.Decimal `json:"daily_rate"`
	VehicleSubtotal decimal.Decimal `json:"vehicle_subtotal"`
	SurchargeTotal  decimal.Decimal `json:"surcharge_total"`
	Deposit         decimal.Decimal `json:"deposit"`
	Discount        decimal.Decimal `json:"discount"`
	PaidNow         decimal.Decimal `json:"paid_now"`
	GrandTotal      decimal.Decimal `json:"grand_total"`
	Remaining       decimal.Decimal `json:"remaining"`
}

// Recompute derives the summary. Discount is subtracted as given, so a
// negative discount raises the grand total. Grand total and remaining
// balance never go below zero.
func Recompute(in Input) Summary {
	days := in.Period.Days()

	vehicleSubtotal := decimal.Zero
	if days > 0 {
		vehicleSubtotal = in.DailyRate.Mul(decimal.NewFromInt(int64(days)))
	}

	grand := clampZero(vehicleSubtotal.Add(in.SurchargeTotal).Sub(in.Discount))
	remaining := clampZero(grand.Sub(in.PaidNow).Sub(in.Deposit))

	return Summary{
		Days:            days,
		DailyRate:       in.DailyRate,
		VehicleSubtotal: vehicleSubtotal,
		SurchargeTotal:  in.SurchargeTotal,
		Deposit:         in.Deposit,
		Discount:        in.Discount,
		PaidNow:         in.PaidNow,
		GrandTotal:      grand,
		Remaining:       remaining,
	}
}

// CollectedNow is what the desk records as a payment right after the
// contract is created: the amount paid now plus the deposit.
func (s Summary) CollectedNow() decimal.Decimal {
	return s.PaidNow.Add(s.Deposit)
}

func clampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
