package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateINSS(t *testing.T) {
	cases := []struct {
		name string
		base string
		want string
	}{
		{"zero base", "0", "0"},
		{"negative base", "-100", "0"},
		{"inside first bracket", "1000.00", "75.00"},
		{"first bracket ceiling", "1518.00", "113.85"},
		{"second bracket ceiling", "2793.88", "228.68"},
		{"inside third bracket", "3000.00", "253.41"},
		{"third bracket ceiling", "4190.83", "396.31"},
		{"contribution ceiling", "8157.41", "951.63"},
		{"above ceiling is capped", "12000.00", "951.63"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CalculateINSS(dec(c.base))
			assert.True(t, got.Equal(dec(c.want)), "CalculateINSS(%s) = %s, want %s", c.base, got, c.want)
		})
	}
}

func TestCalculateINSS_NonDecreasing(t *testing.T) {
	prev := decimal.Zero
	for base := decimal.Zero; base.LessThanOrEqual(dec("9000")); base = base.Add(dec("50")) {
		got := CalculateINSS(base)
		assert.False(t, got.IsNegative(), "INSS(%s) negative", base)
		assert.True(t, got.GreaterThanOrEqual(prev), "INSS(%s) = %s decreased below %s", base, got, prev)
		prev = got
	}
}

func TestCalculateINSS_ContinuousAtBracketBoundaries(t *testing.T) {
	boundaries := []string{"1518.00", "2793.88", "4190.83"}
	for _, b := range boundaries {
		at := CalculateINSS(dec(b))
		justAbove := CalculateINSS(dec(b).Add(dec("0.01")))
		step := justAbove.Sub(at)
		// One extra cent of base moves the contribution by less than a cent.
		assert.True(t, step.GreaterThanOrEqual(decimal.Zero), "negative step at %s", b)
		assert.True(t, step.LessThanOrEqual(dec("0.01")), "discontinuity at boundary %s: %s", b, step)
	}
}

func TestCalculateIRRF(t *testing.T) {
	cases := []struct {
		name string
		base string
		want string
	}{
		{"zero base", "0", "0"},
		{"negative base", "-500", "0"},
		{"at exemption limit", "5000.00", "0"},
		{"just above exemption", "5000.01", "0.00"},
		{"band two sample", "6000.00", "75.00"},
		{"band two ceiling", "7500.00", "187.50"},
		{"band three", "8000.00", "262.50"},
		{"band four", "12000.00", "1012.50"},
		{"top band", "20000.00", "3187.50"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CalculateIRRF(dec(c.base))
			assert.True(t, got.Equal(dec(c.want)), "CalculateIRRF(%s) = %s, want %s", c.base, got, c.want)
		})
	}
}

func TestCalculateIRRF_NonDecreasing(t *testing.T) {
	prev := decimal.Zero
	for base := dec("4000"); base.LessThanOrEqual(dec("15000")); base = base.Add(dec("100")) {
		got := CalculateIRRF(base)
		assert.False(t, got.IsNegative(), "IRRF(%s) negative", base)
		assert.True(t, got.GreaterThanOrEqual(prev), "IRRF(%s) = %s decreased below %s", base, got, prev)
		prev = got
	}
}
