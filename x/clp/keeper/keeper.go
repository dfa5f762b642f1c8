package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"

	"github.com/nearswap/nearswap/x/clp/types"
)

// Keeper owns the pool registry and share ledgers of the clp module.
// All persistent state goes through its key-value store; cross-contract
// effects go through the injected host capability.
type Keeper struct {
	db      dbm.DB
	host    types.Host
	logger  log.Logger
	metrics *Metrics
}

// NewKeeper creates a new clp Keeper instance.
func NewKeeper(db dbm.DB, host types.Host, logger log.Logger) *Keeper {
	return &Keeper{
		db:      db,
		host:    host,
		logger:  logger.With("module", types.ModuleName),
		metrics: NewMetrics(),
	}
}

// Logger returns the module logger.
func (k *Keeper) Logger() log.Logger {
	return k.logger
}

// get loads and unmarshals a record, reporting whether it existed.
func (k *Keeper) get(key []byte, out any) (bool, error) {
	bz, err := k.db.Get(key)
	if err != nil {
		return false, fmt.Errorf("store get: %w", err)
	}
	if bz == nil {
		return false, nil
	}
	if err := json.Unmarshal(bz, out); err != nil {
		return false, fmt.Errorf("store unmarshal: %w", err)
	}
	return true, nil
}

// set marshals and persists a record.
func (k *Keeper) set(key []byte, v any) error {
	bz, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store marshal: %w", err)
	}
	if err := k.db.Set(key, bz); err != nil {
		return fmt.Errorf("store set: %w", err)
	}
	return nil
}

// unmarshalRecord decodes a raw stored record.
func unmarshalRecord(bz []byte, out any) error {
	if err := json.Unmarshal(bz, out); err != nil {
		return fmt.Errorf("store unmarshal: %w", err)
	}
	return nil
}

// InitRegistry initializes the registry singleton. The fee destination
// starts out as the owner. A second initialization fails.
func (k *Keeper) InitRegistry(owner string) error {
	if err := types.ValidateAccountID(owner, "owner"); err != nil {
		return err
	}
	var reg types.Registry
	found, err := k.get(types.RegistryKey, &reg)
	if err != nil {
		return err
	}
	if found {
		return types.ErrAlreadyInit
	}
	return k.set(types.RegistryKey, types.Registry{Owner: owner, FeeDst: owner})
}

// Registry returns the registry singleton.
func (k *Keeper) Registry() (types.Registry, error) {
	var reg types.Registry
	found, err := k.get(types.RegistryKey, &reg)
	if err != nil {
		return types.Registry{}, err
	}
	if !found {
		return types.Registry{}, types.ErrInvalidState.Wrap("registry not initialized")
	}
	return reg, nil
}

// Owner returns the managing account. The owner (which can be a
// multisig) has the rights to update the fee destination and to hand
// over ownership.
func (k *Keeper) Owner() (string, error) {
	reg, err := k.Registry()
	if err != nil {
		return "", err
	}
	return reg.Owner, nil
}

// FeeDst returns the fee destination account. It is the hook for a
// future direct-credit fee path; pricing does not consult it today.
func (k *Keeper) FeeDst() (string, error) {
	reg, err := k.Registry()
	if err != nil {
		return "", err
	}
	return reg.FeeDst, nil
}

// SetFeeDst updates the fee destination. Only the owner may call it.
func (k *Keeper) SetFeeDst(feeDst string) error {
	reg, err := k.assertOwner()
	if err != nil {
		return err
	}
	if err := types.ValidateAccountID(feeDst, "fee_dst"); err != nil {
		return err
	}
	reg.FeeDst = feeDst
	if err := k.set(types.RegistryKey, reg); err != nil {
		return err
	}
	k.logger.Info(types.EventTypeFeeDstChanged, "fee_dst", feeDst)
	return nil
}

// ChangeOwner hands management rights to a new account. Only the
// current owner may call it.
func (k *Keeper) ChangeOwner(newOwner string) error {
	reg, err := k.assertOwner()
	if err != nil {
		return err
	}
	if err := types.ValidateAccountID(newOwner, "owner"); err != nil {
		return err
	}
	k.logger.Info(types.EventTypeOwnerChanged, "from", reg.Owner, "to", newOwner)
	reg.Owner = newOwner
	return k.set(types.RegistryKey, reg)
}

// assertOwner loads the registry and checks the caller is the owner.
func (k *Keeper) assertOwner() (types.Registry, error) {
	reg, err := k.Registry()
	if err != nil {
		return types.Registry{}, err
	}
	if caller := k.host.Predecessor(); caller != reg.Owner {
		return types.Registry{}, types.ErrUnauthorized.Wrapf("caller %s is not the owner", caller)
	}
	return reg, nil
}
