// Package keeper wires a clp keeper over an in-memory store for tests.
package keeper

import (
	"testing"

	"cosmossdk.io/log"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/stretchr/testify/require"

	"github.com/nearswap/nearswap/testutil/host"
	"github.com/nearswap/nearswap/x/clp/keeper"
)

// ContractAccount is the account the test contract is deployed at.
const ContractAccount = "clp.near"

// Owner is the default registry owner in tests.
const Owner = "owner.near"

// ClpKeeper returns a keeper over a fresh in-memory store together with
// its scripted host, initialized with the default owner.
func ClpKeeper(t testing.TB) (*keeper.Keeper, *host.Host) {
	t.Helper()
	db := dbm.NewMemDB()
	h := host.New(ContractAccount)
	h.SetCaller(Owner)
	k := keeper.NewKeeper(db, h, log.NewNopLogger())
	require.NoError(t, k.InitRegistry(Owner))
	return k, h
}
