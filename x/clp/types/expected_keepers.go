package types

import (
	"cosmossdk.io/math"
)

// PromiseID identifies a scheduled cross-contract effect.
type PromiseID uint64

// Callback method names the host dispatches back into the contract once
// a scheduled effect resolves.
const (
	MethodAddLiquidityCallback      = "add_liquidity_transfer_callback"
	MethodWithdrawLiquidityCallback = "withdraw_liquidity_transfer_callback"
	MethodSwapInputCallback         = "swap_input_transfer_callback"
	MethodSwapOutputCallback        = "swap_output_transfer_callback"
)

// Host is the capability surface the contract expects from the ledger
// runtime: caller identity, the native deposit attached to the current
// invocation, and asynchronous effect scheduling. Scheduled effects
// resolve in a later invocation; OnComplete registers the continuation
// and LastOutcomeSuccess observes the preceding effect's outcome from
// within that continuation.
type Host interface {
	// CurrentAccount returns the contract's own account id.
	CurrentAccount() string

	// Predecessor returns the account that invoked the current call.
	Predecessor() string

	// AttachedDeposit returns the native amount attached to the call.
	AttachedDeposit() math.Int

	// ScheduleTokenTransfer enqueues a fungible-token move. When owner
	// is the contract itself the host issues a plain transfer, otherwise
	// a transfer_from charged against the owner's allowance.
	ScheduleTokenTransfer(token, owner, newOwner string, amount math.Int) PromiseID

	// ScheduleNativeTransfer enqueues a native balance transfer.
	ScheduleNativeTransfer(to string, amount math.Int) PromiseID

	// OnComplete registers a self-callback invoked after the given
	// effect resolves. Args are a JSON payload with decimal-string
	// amounts.
	OnComplete(after PromiseID, method string, args []byte)

	// LastOutcomeSuccess reports, within a callback, whether the
	// awaited effect succeeded.
	LastOutcomeSuccess() bool
}

// TokenContract is the collaborator interface a reserve-token contract
// must expose. Hosts resolve scheduled token transfers against it.
type TokenContract interface {
	Transfer(newOwner string, amount math.Int) error
	TransferFrom(owner, newOwner string, amount math.Int) error
}
