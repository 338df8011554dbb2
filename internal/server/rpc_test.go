package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type rpcResult struct {
	ID     any             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *rpcErrBody     `json:"error"`
}

func (e *testEnv) rpc(t *testing.T, caller, method string, param any) rpcResult {
	t.Helper()
	body := map[string]any{"jsonrpc": "2.0", "id": 7, "method": method}
	if param != nil {
		body["params"] = []any{param}
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if caller != "" {
		token, err := e.authSvc.Issue(caller)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var out rpcResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRPCEstimate(t *testing.T) {
	env := newTestEnv(t)
	out := env.rpc(t, "", "gas_estimateGasCost", reserveBody().EstimateRequest)
	require.Nil(t, out.Error)
	var est EstimateResponse
	require.NoError(t, json.Unmarshal(out.Result, &est))
	require.Equal(t, "133334", est.Charge)
}

func TestRPCReserveAndSign(t *testing.T) {
	env := newTestEnv(t)

	out := env.rpc(t, "", "gas_reserve", reserveBody())
	require.NotNil(t, out.Error)
	require.Equal(t, errUnauthorized, out.Error.Code)

	out = env.rpc(t, userAddr, "gas_reserve", reserveBody())
	require.Nil(t, out.Error)
	var r ReservationResponse
	require.NoError(t, json.Unmarshal(out.Result, &r))
	require.Equal(t, uint64(1), r.ID)

	out = env.rpc(t, otherAddr, "gas_signReservation", rpcIDParam{ID: 1})
	require.NotNil(t, out.Error)
	require.Equal(t, errUnauthorized, out.Error.Code)

	out = env.rpc(t, userAddr, "gas_signReservation", rpcIDParam{ID: 1})
	require.Nil(t, out.Error)
	require.NoError(t, json.Unmarshal(out.Result, &r))
	require.Equal(t, "signed", r.Status)

	out = env.rpc(t, userAddr, "gas_getReservation", rpcIDParam{ID: 2})
	require.NotNil(t, out.Error)
	require.Equal(t, errNotFound, out.Error.Code)
}

func TestRPCErrors(t *testing.T) {
	env := newTestEnv(t)

	out := env.rpc(t, "", "gas_unknown", nil)
	require.Equal(t, errMethodNotFound, out.Error.Code)

	out = env.rpc(t, "", "gas_estimateGasCost", nil)
	require.Equal(t, errInvalidParams, out.Error.Code)

	body := reserveBody().EstimateRequest
	body.ChainID = 404
	out = env.rpc(t, "", "gas_estimateGasCost", body)
	require.Equal(t, errNotFound, out.Error.Code)

	req := httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewReader([]byte("{")))
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "invalid json")

	req = httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewReader([]byte(`{"jsonrpc":"2.0","id":1,"method":"gas_reserve"}`)))
	req.Header.Set("Authorization", "Bearer junk")
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}
