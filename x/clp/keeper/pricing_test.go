package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/nearswap/nearswap/x/clp/keeper"
	"github.com/nearswap/nearswap/x/clp/types"
)

func TestCalcOutAmount(t *testing.T) {
	params := types.DefaultParams()

	// floor(100*997*500 / (3000*1000 + 100*997)) = 16
	out, err := keeper.CalcOutAmount(math.NewInt(100), math.NewInt(3000), math.NewInt(500), params)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(16), out)
}

func TestCalcOutAmountGrowsInvariant(t *testing.T) {
	params := types.DefaultParams()
	reserveIn, reserveOut := math.NewInt(3000), math.NewInt(500)

	out, err := keeper.CalcOutAmount(math.NewInt(100), reserveIn, reserveOut, params)
	require.NoError(t, err)

	before := reserveIn.Mul(reserveOut)
	after := reserveIn.Add(math.NewInt(100)).Mul(reserveOut.Sub(out))
	require.True(t, after.GTE(before), "product %s shrank to %s", before, after)
	require.Equal(t, math.NewInt(1_500_400), after)
}

func TestCalcInAmount(t *testing.T) {
	params := types.DefaultParams()

	// floor(3000*50*1000 / ((500-50)*997)) + 1 = 335
	in, err := keeper.CalcInAmount(math.NewInt(50), math.NewInt(500), math.NewInt(3000), params)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(335), in)
}

func TestCalcInOutSelfConsistent(t *testing.T) {
	params := types.DefaultParams()
	reserveIn, reserveOut := math.NewInt(3000), math.NewInt(500)

	// Paying the quoted input always grants at least the requested
	// output.
	for _, want := range []int64{1, 10, 50, 250, 499} {
		in, err := keeper.CalcInAmount(math.NewInt(want), reserveOut, reserveIn, params)
		require.NoError(t, err)
		out, err := keeper.CalcOutAmount(in, reserveIn, reserveOut, params)
		require.NoError(t, err)
		require.True(t, out.GTE(math.NewInt(want)), "want %d, in %s grants %s", want, in, out)
	}
}

func TestCalcZeroAmount(t *testing.T) {
	params := types.DefaultParams()

	_, err := keeper.CalcOutAmount(math.ZeroInt(), math.NewInt(10), math.NewInt(10), params)
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, err = keeper.CalcInAmount(math.ZeroInt(), math.NewInt(10), math.NewInt(10), params)
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func TestCalcDepletedPool(t *testing.T) {
	params := types.DefaultParams()

	_, err := keeper.CalcOutAmount(math.NewInt(5), math.ZeroInt(), math.NewInt(10), params)
	require.ErrorIs(t, err, types.ErrPoolDepleted)

	_, err = keeper.CalcInAmount(math.NewInt(5), math.NewInt(10), math.ZeroInt(), params)
	require.ErrorIs(t, err, types.ErrPoolDepleted)

	// Requesting the whole output reserve is not satisfiable.
	_, err = keeper.CalcInAmount(math.NewInt(10), math.NewInt(10), math.NewInt(100), params)
	require.ErrorIs(t, err, types.ErrPoolDepleted)
}
