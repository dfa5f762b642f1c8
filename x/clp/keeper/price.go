package keeper

import (
	"cosmossdk.io/math"

	"github.com/nearswap/nearswap/x/clp/types"
)

// Read-only price views. Each mirrors the quote of the corresponding
// swap entry point without touching state.

// PriceNearToTokenIn quotes the tokens granted for a native input.
func (k *Keeper) PriceNearToTokenIn(token string, nearIn math.Int) (math.Int, error) {
	pool, params, err := k.poolAndParams(token)
	if err != nil {
		return math.Int{}, err
	}
	return CalcOutAmount(nearIn, pool.NearBal, pool.TokenBal, params)
}

// PriceNearToTokenOut quotes the native input required for an exact
// token output.
func (k *Keeper) PriceNearToTokenOut(token string, tokensOut math.Int) (math.Int, error) {
	pool, params, err := k.poolAndParams(token)
	if err != nil {
		return math.Int{}, err
	}
	return CalcInAmount(tokensOut, pool.TokenBal, pool.NearBal, params)
}

// PriceTokenToNearIn quotes the native granted for a token input.
func (k *Keeper) PriceTokenToNearIn(token string, tokensIn math.Int) (math.Int, error) {
	pool, params, err := k.poolAndParams(token)
	if err != nil {
		return math.Int{}, err
	}
	return CalcOutAmount(tokensIn, pool.TokenBal, pool.NearBal, params)
}

// PriceTokenToNearOut quotes the token input required for an exact
// native output.
func (k *Keeper) PriceTokenToNearOut(token string, nearOut math.Int) (math.Int, error) {
	pool, params, err := k.poolAndParams(token)
	if err != nil {
		return math.Int{}, err
	}
	return CalcInAmount(nearOut, pool.NearBal, pool.TokenBal, params)
}

// PriceTokenToTokenIn quotes the two-hop output for a token input.
func (k *Keeper) PriceTokenToTokenIn(tokenFrom string, tokensIn math.Int, tokenTo string) (math.Int, error) {
	if tokenFrom == tokenTo {
		return math.Int{}, types.ErrSameToken
	}
	from, params, err := k.poolAndParams(tokenFrom)
	if err != nil {
		return math.Int{}, err
	}
	to, err := k.GetPool(tokenTo)
	if err != nil {
		return math.Int{}, err
	}
	nearMid, err := CalcOutAmount(tokensIn, from.TokenBal, from.NearBal, params)
	if err != nil {
		return math.Int{}, err
	}
	return CalcOutAmount(nearMid, to.NearBal, to.TokenBal, params)
}

// PriceTokenToTokenOut quotes the two-hop input for an exact token
// output.
func (k *Keeper) PriceTokenToTokenOut(tokenFrom, tokenTo string, tokensTo math.Int) (math.Int, error) {
	if tokenFrom == tokenTo {
		return math.Int{}, types.ErrSameToken
	}
	from, params, err := k.poolAndParams(tokenFrom)
	if err != nil {
		return math.Int{}, err
	}
	to, err := k.GetPool(tokenTo)
	if err != nil {
		return math.Int{}, err
	}
	nearMid, err := CalcInAmount(tokensTo, to.TokenBal, to.NearBal, params)
	if err != nil {
		return math.Int{}, err
	}
	return CalcInAmount(nearMid, from.NearBal, from.TokenBal, params)
}

func (k *Keeper) poolAndParams(token string) (types.Pool, types.Params, error) {
	pool, err := k.GetPool(token)
	if err != nil {
		return types.Pool{}, types.Params{}, err
	}
	params, err := k.GetParams()
	if err != nil {
		return types.Pool{}, types.Params{}, err
	}
	return pool, params, nil
}
