package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/nearswap/nearswap/x/clp/types"
)

// Constant-product pricing with the fee taken on the input side. Both
// directions keep the invariant reserve_in*reserve_out non-decreasing:
// the exact-in quote floors the output and the exact-out quote rounds
// the required input up by one.

// CalcOutAmount returns the output granted for amountIn against the
// given reserves:
//
//	out = in*(den-num)*R_out / (R_in*den + in*(den-num))
//
// floored. Fails with ErrZeroAmount on a zero input and ErrPoolDepleted
// when either reserve is empty.
func CalcOutAmount(amountIn, reserveIn, reserveOut math.Int, p types.Params) (math.Int, error) {
	if !amountIn.IsPositive() {
		return math.Int{}, types.ErrZeroAmount
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, types.ErrPoolDepleted
	}

	keep := new(big.Int).SetUint64(p.FeeDen - p.FeeNum)
	inKept := new(big.Int).Mul(amountIn.BigInt(), keep)

	num := new(big.Int).Mul(inKept, reserveOut.BigInt())
	den := new(big.Int).Mul(reserveIn.BigInt(), new(big.Int).SetUint64(p.FeeDen))
	den.Add(den, inKept)

	return narrow(num.Quo(num, den))
}

// CalcInAmount returns the input required to obtain amountOut against
// the given reserves:
//
//	in = R_in*out*den / ((R_out-out)*(den-num)) + 1
//
// Fails with ErrZeroAmount on a zero request and ErrPoolDepleted when a
// reserve is empty or the request meets or exceeds the output reserve.
func CalcInAmount(amountOut, reserveOut, reserveIn math.Int, p types.Params) (math.Int, error) {
	if !amountOut.IsPositive() {
		return math.Int{}, types.ErrZeroAmount
	}
	if !reserveIn.IsPositive() || !reserveOut.IsPositive() {
		return math.Int{}, types.ErrPoolDepleted
	}
	if amountOut.GTE(reserveOut) {
		return math.Int{}, types.ErrPoolDepleted.Wrapf("requested %s of a %s reserve", amountOut, reserveOut)
	}

	num := new(big.Int).Mul(reserveIn.BigInt(), amountOut.BigInt())
	num.Mul(num, new(big.Int).SetUint64(p.FeeDen))

	den := new(big.Int).Sub(reserveOut.BigInt(), amountOut.BigInt())
	den.Mul(den, new(big.Int).SetUint64(p.FeeDen-p.FeeNum))

	num.Quo(num, den)
	return narrow(num.Add(num, big.NewInt(1)))
}
