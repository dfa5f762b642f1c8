package keeper

import (
	"cosmossdk.io/math"
	dbm "github.com/cosmos/cosmos-db"

	"github.com/nearswap/nearswap/x/clp/types"
)

// CreatePool registers an empty pool for the given reserve token. Any
// account may create pools; funding happens through AddLiquidity.
func (k *Keeper) CreatePool(token string) error {
	if err := types.ValidateAccountID(token, "token"); err != nil {
		return err
	}
	var existing types.Pool
	found, err := k.get(types.PoolKey(token), &existing)
	if err != nil {
		return err
	}
	if found {
		return types.ErrPoolExists.Wrapf("pool for token %s already exists", token)
	}
	if err := k.SetPool(types.NewPool(token)); err != nil {
		return err
	}

	k.metrics.PoolsTotal.Inc()
	k.logger.Info(types.EventTypePoolCreated,
		types.AttributeKeyToken, token,
		types.AttributeKeyCaller, k.host.Predecessor(),
	)
	return nil
}

// GetPool retrieves the pool for the given reserve token.
func (k *Keeper) GetPool(token string) (types.Pool, error) {
	var pool types.Pool
	found, err := k.get(types.PoolKey(token), &pool)
	if err != nil {
		return types.Pool{}, err
	}
	if !found {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("no pool for token %s", token)
	}
	return pool, nil
}

// SetPool persists a pool record.
func (k *Keeper) SetPool(pool *types.Pool) error {
	return k.set(types.PoolKey(pool.Token), pool)
}

// PoolInfo returns the public view of a pool, or nil when the token has
// no pool.
func (k *Keeper) PoolInfo(token string) (*types.PoolInfo, error) {
	pool, err := k.GetPool(token)
	if err != nil {
		if types.ErrPoolNotFound.Is(err) {
			return nil, nil
		}
		return nil, err
	}
	info := pool.Info()
	return &info, nil
}

// ListPools returns the reserve-token ids of all pools in byte order of
// their store keys.
func (k *Keeper) ListPools() ([]string, error) {
	var tokens []string
	err := k.IteratePools(func(pool types.Pool) bool {
		tokens = append(tokens, pool.Token)
		return false
	})
	return tokens, err
}

// IteratePools walks all pools in store order, stopping when cb returns
// true.
func (k *Keeper) IteratePools(cb func(pool types.Pool) (stop bool)) error {
	return k.iteratePrefix(types.PoolKeyPrefix, func(_, bz []byte) (bool, error) {
		var pool types.Pool
		if err := unmarshalRecord(bz, &pool); err != nil {
			return false, err
		}
		return cb(pool), nil
	})
}

// SharesBalanceOf returns the caller-visible share balance an account
// holds in the pool of the given token. Accounts without an entry hold
// zero shares.
func (k *Keeper) SharesBalanceOf(token, owner string) (math.Int, error) {
	if _, err := k.GetPool(token); err != nil {
		return math.Int{}, err
	}
	return k.getShare(token, owner)
}

// getShare reads one share balance, defaulting to zero.
func (k *Keeper) getShare(token, owner string) (math.Int, error) {
	var shares math.Int
	found, err := k.get(types.ShareKey(token, owner), &shares)
	if err != nil {
		return math.Int{}, err
	}
	if !found {
		return math.ZeroInt(), nil
	}
	return shares, nil
}

// setShare writes one share balance, deleting the entry when it drops
// to zero.
func (k *Keeper) setShare(token, owner string, shares math.Int) error {
	if shares.IsZero() {
		return k.db.Delete(types.ShareKey(token, owner))
	}
	return k.set(types.ShareKey(token, owner), shares)
}

// IterateShares walks all share balances of one pool in store order,
// stopping when cb returns true.
func (k *Keeper) IterateShares(token string, cb func(owner string, shares math.Int) (stop bool)) error {
	prefix := types.SharePoolPrefix(token)
	return k.iteratePrefix(prefix, func(key, bz []byte) (bool, error) {
		var shares math.Int
		if err := unmarshalRecord(bz, &shares); err != nil {
			return false, err
		}
		return cb(string(key[len(prefix):]), shares), nil
	})
}

// iteratePrefix runs cb over every record under prefix.
func (k *Keeper) iteratePrefix(prefix []byte, cb func(key, bz []byte) (stop bool, err error)) error {
	it, err := dbm.IteratePrefix(k.db, prefix)
	if err != nil {
		return err
	}
	defer it.Close()
	for ; it.Valid(); it.Next() {
		stop, err := cb(it.Key(), it.Value())
		if err != nil {
			return err
		}
		if stop {
			break
		}
	}
	return it.Error()
}
