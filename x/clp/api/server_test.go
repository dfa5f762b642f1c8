package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/nearswap/nearswap/testutil/keeper"
	"github.com/nearswap/nearswap/x/clp/api"
)

const tokenA = "token-a.near"

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	k, h := keepertest.ClpKeeper(t)

	h.SetCaller("alice.near")
	require.NoError(t, k.CreatePool(tokenA))
	h.SetDeposit(math.NewInt(3000))
	require.NoError(t, k.AddLiquidity(tokenA, math.NewInt(500), math.NewInt(3000)))
	require.NoError(t, h.ResolveNext(true, k.HandleCallback))

	srv := httptest.NewServer(api.NewServer(k, log.NewNopLogger()).Router())
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, wantStatus int) map[string]any {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantStatus, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestListPoolsEndpoint(t *testing.T) {
	srv := testServer(t)
	body := getJSON(t, srv.URL+"/v1/pools", http.StatusOK)
	require.Equal(t, []any{tokenA}, body["pools"])
}

func TestPoolInfoEndpoint(t *testing.T) {
	srv := testServer(t)

	body := getJSON(t, srv.URL+"/v1/pools/"+tokenA, http.StatusOK)
	require.Equal(t, "3000", body["near_bal"])
	require.Equal(t, "500", body["token_bal"])
	require.Equal(t, "3000", body["total_shares"])

	getJSON(t, srv.URL+"/v1/pools/missing.near", http.StatusNotFound)
}

func TestSharesEndpoint(t *testing.T) {
	srv := testServer(t)

	body := getJSON(t, srv.URL+"/v1/pools/"+tokenA+"/shares/alice.near", http.StatusOK)
	require.Equal(t, "3000", body["shares"])

	body = getJSON(t, srv.URL+"/v1/pools/"+tokenA+"/shares/bob.near", http.StatusOK)
	require.Equal(t, "0", body["shares"])
}

func TestPriceEndpoints(t *testing.T) {
	srv := testServer(t)

	body := getJSON(t, srv.URL+"/v1/price/near-to-token/"+tokenA+"?amount=100", http.StatusOK)
	require.Equal(t, "16", body["amount"])

	body = getJSON(t, srv.URL+"/v1/price/near-to-token/"+tokenA+"?amount=50&side=out", http.StatusOK)
	require.Equal(t, "335", body["amount"])

	body = getJSON(t, srv.URL+"/v1/price/token-to-near/"+tokenA+"?amount=100", http.StatusOK)
	require.Equal(t, "498", body["amount"])
}

func TestPriceEndpointValidation(t *testing.T) {
	srv := testServer(t)

	getJSON(t, srv.URL+"/v1/price/near-to-token/"+tokenA+"?amount=abc", http.StatusBadRequest)
	getJSON(t, srv.URL+"/v1/price/near-to-token/"+tokenA+"?amount=100&side=sideways", http.StatusBadRequest)
	getJSON(t, srv.URL+"/v1/price/near-to-token/missing.near?amount=100", http.StatusNotFound)
	getJSON(t, srv.URL+"/v1/price/token-to-token?from="+tokenA+"&to="+tokenA+"&amount=10", http.StatusBadRequest)
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)
	body := getJSON(t, srv.URL+"/healthz", http.StatusOK)
	require.Equal(t, "ok", body["status"])
}
