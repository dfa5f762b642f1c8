// Package host provides a scripted ledger host for keeper tests. It
// records scheduled effects instead of executing them and lets the test
// resolve each registered callback with a chosen outcome.
package host

import (
	"fmt"

	"cosmossdk.io/math"

	"github.com/nearswap/nearswap/x/clp/types"
)

// Transfer is one recorded transfer effect. Token is empty for native
// transfers.
type Transfer struct {
	ID       types.PromiseID
	Token    string
	Owner    string
	NewOwner string
	Amount   math.Int
}

// Callback is one recorded completion continuation.
type Callback struct {
	After  types.PromiseID
	Method string
	Args   []byte
}

// Host implements types.Host for tests.
type Host struct {
	Account   string
	Transfers []Transfer
	Callbacks []Callback

	caller  string
	deposit math.Int
	seq     uint64
	outcome bool
}

// New returns a host for a contract deployed at account.
func New(account string) *Host {
	return &Host{Account: account, deposit: math.ZeroInt()}
}

// SetCaller sets the predecessor of the next invocation.
func (h *Host) SetCaller(caller string) { h.caller = caller }

// SetDeposit sets the native deposit attached to the next invocation.
func (h *Host) SetDeposit(amount math.Int) { h.deposit = amount }

func (h *Host) CurrentAccount() string    { return h.Account }
func (h *Host) Predecessor() string       { return h.caller }
func (h *Host) AttachedDeposit() math.Int { return h.deposit }
func (h *Host) LastOutcomeSuccess() bool  { return h.outcome }

// ScheduleTokenTransfer records a token transfer effect.
func (h *Host) ScheduleTokenTransfer(token, owner, newOwner string, amount math.Int) types.PromiseID {
	h.seq++
	h.Transfers = append(h.Transfers, Transfer{
		ID:       types.PromiseID(h.seq),
		Token:    token,
		Owner:    owner,
		NewOwner: newOwner,
		Amount:   amount,
	})
	return types.PromiseID(h.seq)
}

// ScheduleNativeTransfer records a native transfer effect.
func (h *Host) ScheduleNativeTransfer(to string, amount math.Int) types.PromiseID {
	h.seq++
	h.Transfers = append(h.Transfers, Transfer{
		ID:       types.PromiseID(h.seq),
		Owner:    h.Account,
		NewOwner: to,
		Amount:   amount,
	})
	return types.PromiseID(h.seq)
}

// OnComplete records a continuation for a scheduled effect.
func (h *Host) OnComplete(after types.PromiseID, method string, args []byte) {
	h.Callbacks = append(h.Callbacks, Callback{After: after, Method: method, Args: args})
}

// LastTransfer returns the most recently scheduled transfer.
func (h *Host) LastTransfer() Transfer {
	return h.Transfers[len(h.Transfers)-1]
}

// ResolveNext pops the oldest recorded callback and invokes it through
// the given dispatcher with the chosen transfer outcome. The callback
// runs with the contract itself as predecessor, mirroring how the
// ledger delivers continuations.
func (h *Host) ResolveNext(success bool, dispatch func(method string, args []byte) error) error {
	if len(h.Callbacks) == 0 {
		return fmt.Errorf("no pending callbacks")
	}
	cb := h.Callbacks[0]
	h.Callbacks = h.Callbacks[1:]

	prevCaller, prevDeposit := h.caller, h.deposit
	h.caller = h.Account
	h.deposit = math.ZeroInt()
	h.outcome = success
	err := dispatch(cb.Method, cb.Args)
	h.caller, h.deposit = prevCaller, prevDeposit
	return err
}
