// Package host provides a standalone ledger host used by the CLI and
// the API server. Transfers resolve optimistically and callbacks are
// dispatched synchronously when the invocation flushes, which keeps the
// contract logic identical to an on-ledger deployment while running
// against a local store.
package host

import (
	"cosmossdk.io/log"
	"cosmossdk.io/math"

	"github.com/nearswap/nearswap/x/clp/types"
)

// Dispatcher receives resolved callbacks, normally Keeper.HandleCallback.
type Dispatcher func(method string, args []byte) error

type pendingCallback struct {
	method string
	args   []byte
}

// Local implements types.Host over a single process.
type Local struct {
	account  string
	caller   string
	deposit  math.Int
	logger   log.Logger
	dispatch Dispatcher

	seq     uint64
	queue   []pendingCallback
	outcome bool
}

// NewLocal returns a host for a contract at the given account.
func NewLocal(account string, logger log.Logger) *Local {
	return &Local{
		account: account,
		deposit: math.ZeroInt(),
		logger:  logger.With("component", "local-host"),
	}
}

// Bind sets the callback dispatcher. Must be called before Flush.
func (l *Local) Bind(d Dispatcher) { l.dispatch = d }

// SetCaller sets the predecessor for the next invocation.
func (l *Local) SetCaller(caller string) { l.caller = caller }

// SetDeposit sets the attached native deposit for the next invocation.
func (l *Local) SetDeposit(amount math.Int) { l.deposit = amount }

func (l *Local) CurrentAccount() string    { return l.account }
func (l *Local) Predecessor() string       { return l.caller }
func (l *Local) AttachedDeposit() math.Int { return l.deposit }
func (l *Local) LastOutcomeSuccess() bool  { return l.outcome }

// ScheduleTokenTransfer logs the transfer and resolves it as succeeded.
func (l *Local) ScheduleTokenTransfer(token, owner, newOwner string, amount math.Int) types.PromiseID {
	l.seq++
	l.logger.Info("token transfer",
		"token", token, "from", owner, "to", newOwner, "amount", amount.String())
	return types.PromiseID(l.seq)
}

// ScheduleNativeTransfer logs the transfer and resolves it as succeeded.
func (l *Local) ScheduleNativeTransfer(to string, amount math.Int) types.PromiseID {
	l.seq++
	l.logger.Info("native transfer", "to", to, "amount", amount.String())
	return types.PromiseID(l.seq)
}

// OnComplete queues the continuation for the next Flush.
func (l *Local) OnComplete(_ types.PromiseID, method string, args []byte) {
	l.queue = append(l.queue, pendingCallback{method: method, args: args})
}

// Flush drains the queued callbacks, dispatching each with the contract
// as predecessor and a successful outcome. Callbacks may enqueue more
// effects; those drain in the same pass.
func (l *Local) Flush() error {
	prevCaller, prevDeposit := l.caller, l.deposit
	defer func() { l.caller, l.deposit = prevCaller, prevDeposit }()

	l.caller = l.account
	l.deposit = math.ZeroInt()
	l.outcome = true
	for len(l.queue) > 0 {
		cb := l.queue[0]
		l.queue = l.queue[1:]
		if err := l.dispatch(cb.method, cb.args); err != nil {
			return err
		}
	}
	return nil
}
