package types_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nearswap/nearswap/x/clp/types"
)

func TestValidAccountID(t *testing.T) {
	valid := []string{
		"ok",
		"alice.near",
		"token-a.near",
		"a_b-c.d",
		"1234567890",
		strings.Repeat("a", 64),
	}
	for _, id := range valid {
		require.True(t, types.ValidAccountID(id), id)
	}

	invalid := []string{
		"",
		"a",
		strings.Repeat("a", 65),
		"Alice.near",
		".near",
		"near.",
		"a..b",
		"a.-b",
		"has space",
		"emoji😀",
	}
	for _, id := range invalid {
		require.False(t, types.ValidAccountID(id), id)
	}
}

func TestValidateAccountID(t *testing.T) {
	require.NoError(t, types.ValidateAccountID("alice.near", "caller"))

	err := types.ValidateAccountID("..", "caller")
	require.ErrorIs(t, err, types.ErrInvalidAccount)
	require.Contains(t, err.Error(), "caller")
}
