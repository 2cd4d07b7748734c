package employee

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestModality_ExemptFromContributions(t *testing.T) {
	assert.False(t, ModalityCLT.ExemptFromContributions())
	assert.True(t, ModalityMEI.ExemptFromContributions())
	assert.True(t, ModalityIntern.ExemptFromContributions())
}

func TestEmployee_HazardAndUnhealthyPay(t *testing.T) {
	e := Employee{
		BaseSalary:       decimal.RequireFromString("3000.00"),
		HazardPayPercent: decimal.RequireFromString("30"),
		UnhealthyPercent: decimal.RequireFromString("20"),
	}

	assert.True(t, e.HazardPay().Equal(decimal.RequireFromString("900")), "hazard %s", e.HazardPay())
	assert.True(t, e.UnhealthyPay().Equal(decimal.RequireFromString("600")), "unhealthy %s", e.UnhealthyPay())
}

func TestEmployee_ActiveDuring(t *testing.T) {
	periodEnd := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)

	hired := Employee{AdmissionDate: time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)}
	assert.True(t, hired.ActiveDuring(periodEnd))

	future := Employee{AdmissionDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)}
	assert.False(t, future.ActiveDuring(periodEnd))
}
