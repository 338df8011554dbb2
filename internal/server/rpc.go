package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/0xPexy/sentra-gas-station/internal/auth"
	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

// rpcHandler exposes the station over JSON-RPC 2.0. Every method takes a
// single object as its only positional parameter.
type rpcHandler struct {
	st         *station.Station
	authorizer station.Authorizer
}

func newRPCHandler(st *station.Station, authorizer station.Authorizer) *rpcHandler {
	return &rpcHandler{st: st, authorizer: authorizer}
}

// HandleJSONRPC godoc
// @Summary Station JSON-RPC
// @Description Methods: gas_estimateGasCost, gas_reserve, gas_signReservation, gas_getReservation. All but the first need a bearer token.
// @Tags Station
// @Accept json
// @Produce json
// @Param request body interface{} true "JSON-RPC payload"
// @Success 200 {object} interface{}
// @Router /rpc [post]
func (h *rpcHandler) HandleJSONRPC(c *gin.Context) {
	var req rpcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, rpcErr(nil, errInvalidRequest, "invalid json"))
		return
	}
	if req.JSONRPC != "2.0" {
		c.JSON(http.StatusOK, rpcErr(req.ID, errInvalidRequest, "jsonrpc must be 2.0"))
		return
	}
	ctx := c.Request.Context()
	caller := auth.Caller(c)

	var (
		result any
		resp   *rpcResponse
	)
	switch req.Method {
	case "gas_estimateGasCost":
		result, resp = h.estimate(ctx, req)
	case "gas_reserve":
		result, resp = h.reserve(ctx, req, caller)
	case "gas_signReservation":
		result, resp = h.sign(ctx, req, caller)
	case "gas_getReservation":
		result, resp = h.get(ctx, req, caller)
	default:
		out := rpcErr(req.ID, errMethodNotFound, "method not found")
		resp = &out
	}
	if resp != nil {
		c.JSON(http.StatusOK, resp)
		return
	}
	c.JSON(http.StatusOK, rpcOK(req.ID, result))
}

func decodeParam(req rpcRequest, out any) *rpcResponse {
	var in []json.RawMessage
	if err := json.Unmarshal(req.Params, &in); err != nil || len(in) != 1 {
		resp := rpcErr(req.ID, errInvalidParams, "expected one object parameter")
		return &resp
	}
	if err := json.Unmarshal(in[0], out); err != nil {
		resp := rpcErr(req.ID, errInvalidParams, "invalid params: "+err.Error())
		return &resp
	}
	return nil
}

func stationRPCError(id any, err error) *rpcResponse {
	code := errServer
	switch {
	case errors.Is(err, station.ErrUnauthorized):
		code = errUnauthorized
	case errors.Is(err, station.ErrChainNotFound),
		errors.Is(err, station.ErrPaymasterNotFound),
		errors.Is(err, station.ErrReservationNotFound):
		code = errNotFound
	case errors.Is(err, station.ErrNegativePrice),
		errors.Is(err, station.ErrInvalidRequest):
		code = errInvalidParams
	case errors.Is(err, station.ErrInsufficientBalance),
		errors.Is(err, station.ErrArithmeticOverflow),
		errors.Is(err, station.ErrDivisionByZero):
		code = errRejected
	}
	resp := rpcErr(id, code, err.Error())
	return &resp
}

func requireCaller(req rpcRequest, caller string) *rpcResponse {
	if caller == "" {
		resp := rpcErr(req.ID, errUnauthorized, "authorization required")
		return &resp
	}
	return nil
}

func (h *rpcHandler) estimate(ctx context.Context, req rpcRequest) (any, *rpcResponse) {
	var in EstimateRequest
	if resp := decodeParam(req, &in); resp != nil {
		return nil, resp
	}
	gr, err := in.gasRequest()
	if err != nil {
		resp := rpcErr(req.ID, errInvalidParams, err.Error())
		return nil, &resp
	}
	charge, err := h.st.EstimateGasCost(ctx, gr)
	if err != nil {
		return nil, stationRPCError(req.ID, err)
	}
	return EstimateResponse{ChainID: in.ChainID, Charge: charge.Dec()}, nil
}

func (h *rpcHandler) reserve(ctx context.Context, req rpcRequest, caller string) (any, *rpcResponse) {
	if resp := requireCaller(req, caller); resp != nil {
		return nil, resp
	}
	var in ReserveRequest
	if resp := decodeParam(req, &in); resp != nil {
		return nil, resp
	}
	if !common.IsHexAddress(in.Receiver) {
		resp := rpcErr(req.ID, errInvalidParams, "invalid receiver")
		return nil, &resp
	}
	gr, err := in.gasRequest()
	if err != nil {
		resp := rpcErr(req.ID, errInvalidParams, err.Error())
		return nil, &resp
	}
	r, err := h.st.Reserve(ctx, caller, station.ReserveRequest{
		GasRequest:   gr,
		Receiver:     common.HexToAddress(in.Receiver),
		PaymentAsset: strings.TrimSpace(in.PaymentAsset),
	})
	if err != nil {
		return nil, stationRPCError(req.ID, err)
	}
	return reservationDTO(*r), nil
}

func (h *rpcHandler) load(ctx context.Context, req rpcRequest, caller string) (*station.Reservation, *rpcResponse) {
	if resp := requireCaller(req, caller); resp != nil {
		return nil, resp
	}
	var in rpcIDParam
	if resp := decodeParam(req, &in); resp != nil {
		return nil, resp
	}
	r, err := h.st.Reservation(ctx, in.ID)
	if err != nil {
		return nil, stationRPCError(req.ID, err)
	}
	caller = station.NormalizeAddress(caller)
	if r.CreatedBy != caller && (h.authorizer == nil || !h.authorizer.IsOwner(caller)) {
		return nil, stationRPCError(req.ID, station.ErrUnauthorized)
	}
	return r, nil
}

func (h *rpcHandler) get(ctx context.Context, req rpcRequest, caller string) (any, *rpcResponse) {
	r, resp := h.load(ctx, req, caller)
	if resp != nil {
		return nil, resp
	}
	return reservationDTO(*r), nil
}

func (h *rpcHandler) sign(ctx context.Context, req rpcRequest, caller string) (any, *rpcResponse) {
	r, resp := h.load(ctx, req, caller)
	if resp != nil {
		return nil, resp
	}
	signed, err := h.st.SignReservation(ctx, r.ID)
	if err != nil {
		return nil, stationRPCError(req.ID, err)
	}
	return reservationDTO(*signed), nil
}
