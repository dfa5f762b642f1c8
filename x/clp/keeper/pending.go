package keeper

import (
	"encoding/binary"

	"github.com/nearswap/nearswap/x/clp/types"
)

// nextPendingID increments and returns the pending swap sequence.
func (k *Keeper) nextPendingID() (uint64, error) {
	bz, err := k.db.Get(types.PendingSeqKey)
	if err != nil {
		return 0, err
	}
	var id uint64 = 1
	if bz != nil {
		id = binary.BigEndian.Uint64(bz) + 1
	}
	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, id)
	if err := k.db.Set(types.PendingSeqKey, next); err != nil {
		return 0, err
	}
	return id, nil
}

// setPendingSwap persists a pending swap record.
func (k *Keeper) setPendingSwap(ps *types.PendingSwap) error {
	return k.set(types.PendingKey(ps.Id), ps)
}

// GetPendingSwap retrieves a pending swap by id.
func (k *Keeper) GetPendingSwap(id uint64) (types.PendingSwap, error) {
	var ps types.PendingSwap
	found, err := k.get(types.PendingKey(id), &ps)
	if err != nil {
		return types.PendingSwap{}, err
	}
	if !found {
		return types.PendingSwap{}, types.ErrPendingNotFound.Wrapf("no pending swap %d", id)
	}
	return ps, nil
}

// deletePendingSwap removes a resolved pending swap record.
func (k *Keeper) deletePendingSwap(id uint64) error {
	return k.db.Delete(types.PendingKey(id))
}

// IteratePendingSwaps walks all unresolved pending swaps in id order,
// stopping when cb returns true.
func (k *Keeper) IteratePendingSwaps(cb func(ps types.PendingSwap) (stop bool)) error {
	return k.iteratePrefix(types.PendingKeyPrefix, func(_, bz []byte) (bool, error) {
		var ps types.PendingSwap
		if err := unmarshalRecord(bz, &ps); err != nil {
			return false, err
		}
		return cb(ps), nil
	})
}
