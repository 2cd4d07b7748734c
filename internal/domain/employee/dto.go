package employee

// Filters narrows employee listing by organizational attributes. All fields
// are optional; empty/nil values match everything.
type Filters struct {
	Search          *string
	LegalEntity     *string
	Department      *string
	Position        *string
	CostCenter      *string
	Client          *string
	BenefitModality *string
	Bank            *string
	AccountType     *string
	RegionalHub     *string

	// ForAllocation narrows to employees whose attendance must be tracked.
	ForAllocation bool
}
