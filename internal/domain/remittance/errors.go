package remittance

import "errors"

var (
	ErrNoEligiblePayments = errors.New("no eligible payments for remittance")
	ErrRecordLength       = errors.New("cnab400 record length invariant violated")
)
