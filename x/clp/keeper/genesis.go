package keeper

import (
	"cosmossdk.io/math"

	"github.com/nearswap/nearswap/x/clp/types"
)

// InitGenesis writes a validated genesis state into the store.
func (k *Keeper) InitGenesis(gs *types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if err := k.set(types.RegistryKey, gs.Registry); err != nil {
		return err
	}
	if err := k.SetParams(gs.Params); err != nil {
		return err
	}
	for _, rec := range gs.Pools {
		pool := rec.Pool
		if err := k.SetPool(&pool); err != nil {
			return err
		}
		for _, sh := range rec.Shares {
			if err := k.setShare(pool.Token, sh.Account, sh.Shares); err != nil {
				return err
			}
		}
	}
	k.metrics.PoolsTotal.Set(float64(len(gs.Pools)))
	return nil
}

// ExportGenesis extracts the full module state.
func (k *Keeper) ExportGenesis() (*types.GenesisState, error) {
	reg, err := k.Registry()
	if err != nil {
		return nil, err
	}
	params, err := k.GetParams()
	if err != nil {
		return nil, err
	}
	gs := &types.GenesisState{Registry: reg, Params: params}

	err = k.IteratePools(func(pool types.Pool) bool {
		rec := types.PoolRecord{Pool: pool}
		_ = k.IterateShares(pool.Token, func(owner string, shares math.Int) bool {
			rec.Shares = append(rec.Shares, types.ShareRecord{Account: owner, Shares: shares})
			return false
		})
		gs.Pools = append(gs.Pools, rec)
		return false
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}
