package types

import (
	"fmt"

	"cosmossdk.io/math"
)

// ShareRecord is one account's share balance inside a pool export.
type ShareRecord struct {
	Account string   `json:"account"`
	Shares  math.Int `json:"shares"`
}

// PoolRecord bundles a pool with its full share ledger.
type PoolRecord struct {
	Pool   Pool          `json:"pool"`
	Shares []ShareRecord `json:"shares"`
}

// GenesisState is the full exportable module state.
type GenesisState struct {
	Registry Registry     `json:"registry"`
	Params   Params       `json:"params"`
	Pools    []PoolRecord `json:"pools"`
}

// DefaultGenesis returns an empty state owned by the given account. The
// fee destination defaults to the owner.
func DefaultGenesis(owner string) *GenesisState {
	return &GenesisState{
		Registry: Registry{Owner: owner, FeeDst: owner},
		Params:   DefaultParams(),
	}
}

// Validate checks structural consistency: valid accounts, the share sum
// matching total_shares, and pools being either fresh or fully seeded.
func (gs *GenesisState) Validate() error {
	if err := ValidateAccountID(gs.Registry.Owner, "owner"); err != nil {
		return err
	}
	if err := ValidateAccountID(gs.Registry.FeeDst, "fee_dst"); err != nil {
		return err
	}
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool, len(gs.Pools))
	for _, rec := range gs.Pools {
		p := rec.Pool
		if err := ValidateAccountID(p.Token, "token"); err != nil {
			return err
		}
		if seen[p.Token] {
			return fmt.Errorf("duplicate pool for token %s", p.Token)
		}
		seen[p.Token] = true

		if p.NearBal.IsNegative() || p.TokenBal.IsNegative() || p.TotalShares.IsNegative() {
			return fmt.Errorf("pool %s has a negative balance", p.Token)
		}
		// Pools are either fresh (all zero) or fully seeded.
		if !p.Empty() && (!p.NearBal.IsPositive() || !p.TokenBal.IsPositive() || !p.TotalShares.IsPositive()) {
			return fmt.Errorf("pool %s is partially seeded: %s", p.Token, p.Info())
		}

		sum := math.ZeroInt()
		for _, sh := range rec.Shares {
			if err := ValidateAccountID(sh.Account, "share owner"); err != nil {
				return err
			}
			if !sh.Shares.IsPositive() {
				return fmt.Errorf("pool %s: share balance of %s must be positive", p.Token, sh.Account)
			}
			sum = sum.Add(sh.Shares)
		}
		if !sum.Equal(p.TotalShares) {
			return fmt.Errorf("pool %s: share sum %s != total_shares %s", p.Token, sum, p.TotalShares)
		}
	}
	return nil
}
