package types

import "fmt"

// Params holds the swap fee expressed as a basis-point style fraction
// deducted from the input amount.
type Params struct {
	FeeNum uint64 `json:"fee_num"`
	FeeDen uint64 `json:"fee_den"`
}

// DefaultParams returns the default 0.3% fee (3/1000).
func DefaultParams() Params {
	return Params{FeeNum: 3, FeeDen: 1000}
}

// Validate checks the fee fraction is well formed.
func (p Params) Validate() error {
	if p.FeeDen == 0 {
		return fmt.Errorf("fee denominator cannot be zero")
	}
	if p.FeeNum >= p.FeeDen {
		return fmt.Errorf("fee %d/%d must be below 1", p.FeeNum, p.FeeDen)
	}
	return nil
}
