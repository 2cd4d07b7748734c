package payroll

import "github.com/shopspring/decimal"

// 2026 contribution tables. INSS is progressive over cumulative brackets with
// the base capped at the contribution ceiling; IRRF applies the band's flat
// rate minus a deduction constant derived from the same cumulative math.

type inssBracket struct {
	Ceiling decimal.Decimal
	Rate    decimal.Decimal
}

var inssBrackets = []inssBracket{
	{decimal.RequireFromString("1518.00"), decimal.RequireFromString("0.075")},
	{decimal.RequireFromString("2793.88"), decimal.RequireFromString("0.09")},
	{decimal.RequireFromString("4190.83"), decimal.RequireFromString("0.12")},
	{decimal.RequireFromString("8157.41"), decimal.RequireFromString("0.14")},
}

// INSSCeiling is the maximum contribution base.
var INSSCeiling = inssBrackets[len(inssBrackets)-1].Ceiling

type irrfBand struct {
	Upper     decimal.Decimal // zero Upper means no upper bound
	Rate      decimal.Decimal
	Deduction decimal.Decimal
}

var irrfExemptionLimit = decimal.RequireFromString("5000.00")

var irrfBands = []irrfBand{
	{decimal.RequireFromString("7500.00"), decimal.RequireFromString("0.075"), decimal.RequireFromString("375.00")},
	{decimal.RequireFromString("10000.00"), decimal.RequireFromString("0.15"), decimal.RequireFromString("937.50")},
	{decimal.RequireFromString("12500.00"), decimal.RequireFromString("0.225"), decimal.RequireFromString("1687.50")},
	{decimal.Decimal{}, decimal.RequireFromString("0.275"), decimal.RequireFromString("2312.50")},
}

// CalculateINSS computes the progressive social-security contribution over a
// monetary base: sum of (slice width x slice rate) per bracket, base capped
// at the ceiling. Non-positive bases contribute zero.
func CalculateINSS(base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	if base.GreaterThan(INSSCeiling) {
		base = INSSCeiling
	}

	total := decimal.Zero
	floor := decimal.Zero
	for _, b := range inssBrackets {
		upper := b.Ceiling
		if base.LessThan(upper) {
			upper = base
		}
		slice := upper.Sub(floor)
		if slice.IsPositive() {
			total = total.Add(slice.Mul(b.Rate))
		}
		if base.LessThanOrEqual(b.Ceiling) {
			break
		}
		floor = b.Ceiling
	}
	return total.Round(2)
}

// CalculateIRRF computes the income-tax withholding for a monetary base.
// Bases at or below the exemption limit withhold nothing; above it, the
// band's flat rate applies minus the band's deduction constant.
func CalculateIRRF(base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() || base.LessThanOrEqual(irrfExemptionLimit) {
		return decimal.Zero
	}

	for _, band := range irrfBands {
		if band.Upper.IsZero() || base.LessThanOrEqual(band.Upper) {
			tax := base.Mul(band.Rate).Sub(band.Deduction)
			if tax.IsNegative() {
				return decimal.Zero
			}
			return tax.Round(2)
		}
	}
	return decimal.Zero
}
