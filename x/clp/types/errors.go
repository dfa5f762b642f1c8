package types

import (
	"cosmossdk.io/errors"
)

// CLP module sentinel errors. Codes are part of the public contract
// and must stay stable; the slippage sentinels cover every max-bound
// and min-bound violation respectively, which is why codes 6-8 are
// unassigned.
var (
	ErrPoolExists         = errors.Register(ModuleName, 1, "pool for this token already exists")
	ErrZeroAmount         = errors.Register(ModuleName, 2, "all token arguments must be positive")
	ErrMaxExceeded        = errors.Register(ModuleName, 3, "required amount of tokens to transfer is bigger than specified max")
	ErrMinNotMet          = errors.Register(ModuleName, 4, "computed amount is smaller than the minimum required by the user")
	ErrInsufficientShares = errors.Register(ModuleName, 5, "not enough shares to redeem")
	ErrSameToken          = errors.Register(ModuleName, 9, "assets must be different in token to token swap")
	ErrPoolDepleted       = errors.Register(ModuleName, 10, "pool is empty and can't make a swap")

	ErrUnauthorized    = errors.Register(ModuleName, 11, "caller is not authorized")
	ErrInvalidAccount  = errors.Register(ModuleName, 12, "invalid account id")
	ErrArith           = errors.Register(ModuleName, 13, "arithmetic overflow narrowing to 128 bits")
	ErrPoolNotFound    = errors.Register(ModuleName, 14, "pool not found")
	ErrPendingNotFound = errors.Register(ModuleName, 15, "pending swap not found")
	ErrInvalidState    = errors.Register(ModuleName, 16, "invalid pool state")
	ErrAlreadyInit     = errors.Register(ModuleName, 17, "registry already initialized")
	ErrUnknownCallback = errors.Register(ModuleName, 18, "unknown callback method")
)
