package keeper

import (
	"github.com/nearswap/nearswap/x/clp/types"
)

// GetParams returns the fee parameters, falling back to the defaults
// when none were stored.
func (k *Keeper) GetParams() (types.Params, error) {
	var params types.Params
	found, err := k.get(types.ParamsKey, &params)
	if err != nil {
		return types.Params{}, err
	}
	if !found {
		return types.DefaultParams(), nil
	}
	return params, nil
}

// SetParams validates and stores the fee parameters.
func (k *Keeper) SetParams(params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.set(types.ParamsKey, params)
}
