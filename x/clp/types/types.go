package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// Pool holds the reserves of one native/token pair. Per-account share
// balances live in a separate sub-mapping (see ShareKey); only the total
// is kept on the pool record.
type Pool struct {
	Token       string   `json:"token"`
	NearBal     math.Int `json:"near_bal"`
	TokenBal    math.Int `json:"token_bal"`
	TotalShares math.Int `json:"total_shares"`
}

// NewPool returns an empty pool for the given reserve token.
func NewPool(token string) *Pool {
	return &Pool{
		Token:       token,
		NearBal:     math.ZeroInt(),
		TokenBal:    math.ZeroInt(),
		TotalShares: math.ZeroInt(),
	}
}

// Info extracts the public view of the pool.
func (p *Pool) Info() PoolInfo {
	return PoolInfo{
		NearBal:     p.NearBal,
		TokenBal:    p.TokenBal,
		TotalShares: p.TotalShares,
	}
}

// Empty reports whether the pool holds no reserves and no shares.
func (p *Pool) Empty() bool {
	return p.NearBal.IsZero() && p.TokenBal.IsZero() && p.TotalShares.IsZero()
}

// PoolInfo is the public data of a Pool. Shares use the same number of
// trailing decimals as the native token (SharesDecimals).
type PoolInfo struct {
	NearBal     math.Int `json:"near_bal"`
	TokenBal    math.Int `json:"token_bal"`
	TotalShares math.Int `json:"total_shares"`
}

func (pi PoolInfo) String() string {
	return fmt.Sprintf("(%s, %s, %s)", pi.NearBal, pi.TokenBal, pi.TotalShares)
}

// Registry is the contract-wide singleton: the managing owner and the
// account credited with protocol fees. FeeDst is reserved for a future
// direct-credit fee path; today fees accrue as pool invariant growth.
type Registry struct {
	Owner  string `json:"owner"`
	FeeDst string `json:"fee_dst"`
}

// PendingSwap is a token-originating swap quoted and recorded before its
// inbound transfer resolves. Reserve mutations are applied only in the
// completion callback, keyed by Id.
type PendingSwap struct {
	Id        uint64   `json:"id"`
	Payer     string   `json:"payer"`
	Recipient string   `json:"recipient"`
	TokenIn   string   `json:"token_in"`
	AmountIn  math.Int `json:"amount_in"`
	// TokenOut is empty when the output leg is native.
	TokenOut  string   `json:"token_out,omitempty"`
	AmountOut math.Int `json:"amount_out"`
	// MinOut is the caller's output bound, re-checked against current
	// reserves at commit time.
	MinOut math.Int `json:"min_out"`
	// NearMid is the in-memory native amount bridging a two-hop swap.
	NearMid math.Int `json:"near_mid"`
}

// TwoHop reports whether the pending swap routes through two pools.
func (ps *PendingSwap) TwoHop() bool {
	return ps.TokenOut != ""
}
