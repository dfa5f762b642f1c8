package types_test

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/nearswap/nearswap/x/clp/types"
)

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())
	require.Error(t, types.Params{FeeNum: 1, FeeDen: 0}.Validate())
	require.Error(t, types.Params{FeeNum: 1000, FeeDen: 1000}.Validate())
}

func TestPoolInfoString(t *testing.T) {
	info := types.PoolInfo{
		NearBal:     math.NewInt(3000),
		TokenBal:    math.NewInt(500),
		TotalShares: math.NewInt(3000),
	}
	require.Equal(t, "(3000, 500, 3000)", info.String())
}

func TestPoolJSONAmountsAreStrings(t *testing.T) {
	pool := types.NewPool("token-a.near")
	pool.NearBal = math.NewIntWithDecimal(12, 24)

	bz, err := json.Marshal(pool)
	require.NoError(t, err)
	require.Contains(t, string(bz), `"near_bal":"12000000000000000000000000"`)

	var back types.Pool
	require.NoError(t, json.Unmarshal(bz, &back))
	require.Equal(t, pool.NearBal, back.NearBal)
}

func TestPendingSwapTwoHop(t *testing.T) {
	ps := types.PendingSwap{TokenIn: "token-a.near"}
	require.False(t, ps.TwoHop())
	ps.TokenOut = "token-b.near"
	require.True(t, ps.TwoHop())
}
