package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/nearswap/nearswap/x/clp/types"
)

// Pool balances and share supplies stay within 128 bits. Intermediate
// products may need up to 256 bits, so the helpers below compute on
// big.Int and narrow the final result back down.
var maxBalance = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// MulDiv computes a*b/den with a 256-bit intermediate, flooring the
// quotient. It fails with ErrArith when den is zero or the result does
// not fit in 128 bits.
func MulDiv(a, b, den math.Int) (math.Int, error) {
	if den.IsZero() {
		return math.Int{}, types.ErrArith.Wrap("division by zero")
	}
	prod := new(big.Int).Mul(a.BigInt(), b.BigInt())
	prod.Quo(prod, den.BigInt())
	return narrow(prod)
}

// CheckedAdd returns a+b, failing with ErrArith on 128-bit overflow.
func CheckedAdd(a, b math.Int) (math.Int, error) {
	return narrow(new(big.Int).Add(a.BigInt(), b.BigInt()))
}

// CheckedSub returns a-b, failing with ErrArith when the result would
// be negative.
func CheckedSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, types.ErrArith.Wrapf("subtraction underflow: %s < %s", a, b)
	}
	return a.Sub(b), nil
}

// narrow converts a big.Int back to math.Int, enforcing the 128-bit
// balance cap.
func narrow(v *big.Int) (math.Int, error) {
	if v.Sign() < 0 || v.Cmp(maxBalance) > 0 {
		return math.Int{}, types.ErrArith.Wrapf("value %s exceeds the 128-bit balance range", v)
	}
	return math.NewIntFromBigInt(v), nil
}
