package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/0xPexy/sentra-gas-station/internal/admin"
	"github.com/0xPexy/sentra-gas-station/internal/auth"
	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

type stationHandler struct {
	st         *station.Station
	authorizer station.Authorizer
}

func newStationHandler(st *station.Station, authorizer station.Authorizer) *stationHandler {
	return &stationHandler{st: st, authorizer: authorizer}
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

func (req EstimateRequest) gasRequest() (station.GasRequest, error) {
	gas, err := admin.ParseAmount("gas", req.Gas)
	if err != nil {
		return station.GasRequest{}, err
	}
	maxFee, err := admin.ParseAmount("maxFeePerGas", req.MaxFeePerGas)
	if err != nil {
		return station.GasRequest{}, err
	}
	return station.GasRequest{
		ChainID:      req.ChainID,
		Gas:          gas,
		MaxFeePerGas: maxFee,
		LocalPrice:   req.LocalPrice,
		ForeignPrice: req.ForeignPrice,
	}, nil
}

// Estimate godoc
// @Summary Estimate the local charge of a gas request
// @Description Prices (gas + transfer gas) * maxFeePerGas in the local asset. Nothing is reserved.
// @Tags Station
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "Gas request"
// @Success 200 {object} server.EstimateResponse
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 422 {object} server.ErrorResponse
// @Router /api/v1/estimate [post]
func (h *stationHandler) Estimate(c *gin.Context) {
	var req EstimateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	gr, err := req.gasRequest()
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	charge, err := h.st.EstimateGasCost(c.Request.Context(), gr)
	if err != nil {
		admin.WriteStationError(c, err)
		return
	}
	c.JSON(http.StatusOK, EstimateResponse{ChainID: req.ChainID, Charge: charge.Dec()})
}

// Reserve godoc
// @Summary Reserve a paymaster
// @Description Picks the next paymaster of the chain, deducts the gas cost and allocates a nonce.
// @Tags Station
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ReserveRequest true "Reservation request"
// @Success 201 {object} server.ReservationResponse
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 422 {object} server.ErrorResponse
// @Router /api/v1/reservations [post]
func (h *stationHandler) Reserve(c *gin.Context) {
	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !common.IsHexAddress(req.Receiver) {
		writeError(c, http.StatusBadRequest, "invalid receiver")
		return
	}
	gr, err := req.gasRequest()
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	r, err := h.st.Reserve(c.Request.Context(), auth.Caller(c), station.ReserveRequest{
		GasRequest:   gr,
		Receiver:     common.HexToAddress(req.Receiver),
		PaymentAsset: strings.TrimSpace(req.PaymentAsset),
	})
	if err != nil {
		admin.WriteStationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reservationDTO(*r))
}

// ListReservations godoc
// @Summary List reservations
// @Description Returns the caller's reservations. The owner may pass all=true to list everyone's.
// @Tags Station
// @Security BearerAuth
// @Produce json
// @Param offset query int false "Offset"
// @Param limit query int false "Limit (max 100)"
// @Param all query bool false "All callers (owner only)"
// @Success 200 {array} server.ReservationResponse
// @Failure 400 {object} server.ErrorResponse
// @Router /api/v1/reservations [get]
func (h *stationHandler) ListReservations(c *gin.Context) {
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}
	caller := auth.Caller(c)
	filter := station.ReservationFilter{CreatedBy: caller, Offset: offset, Limit: limit}
	if c.Query("all") == "true" && h.isOwner(caller) {
		filter.CreatedBy = ""
	}
	list, err := h.st.Reservations(c.Request.Context(), filter)
	if err != nil {
		admin.WriteStationError(c, err)
		return
	}
	out := make([]ReservationResponse, 0, len(list))
	for _, r := range list {
		out = append(out, reservationDTO(r))
	}
	c.JSON(http.StatusOK, out)
}

// GetReservation godoc
// @Summary Get a reservation
// @Tags Station
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} server.ReservationResponse
// @Failure 403 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Router /api/v1/reservations/{id} [get]
func (h *stationHandler) GetReservation(c *gin.Context) {
	r, ok := h.loadOwnReservation(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, reservationDTO(*r))
}

// SignReservation godoc
// @Summary Sign the paymaster transaction of a reservation
// @Description Returns the reservation with the raw signed transaction. A failed signature leaves the reservation in sign_failed.
// @Tags Station
// @Security BearerAuth
// @Produce json
// @Param id path int true "Reservation ID"
// @Success 200 {object} server.ReservationResponse
// @Failure 403 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 502 {object} server.ErrorResponse
// @Router /api/v1/reservations/{id}/sign [post]
func (h *stationHandler) SignReservation(c *gin.Context) {
	r, ok := h.loadOwnReservation(c)
	if !ok {
		return
	}
	signed, err := h.st.SignReservation(c.Request.Context(), r.ID)
	if err != nil {
		if signed != nil {
			writeError(c, http.StatusBadGateway, err.Error())
			return
		}
		admin.WriteStationError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservationDTO(*signed))
}

func (h *stationHandler) loadOwnReservation(c *gin.Context) (*station.Reservation, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid id")
		return nil, false
	}
	r, err := h.st.Reservation(c.Request.Context(), id)
	if err != nil {
		admin.WriteStationError(c, err)
		return nil, false
	}
	caller := station.NormalizeAddress(auth.Caller(c))
	if r.CreatedBy != caller && !h.isOwner(caller) {
		admin.WriteStationError(c, station.ErrUnauthorized)
		return nil, false
	}
	return r, true
}

func (h *stationHandler) isOwner(caller string) bool {
	return h.authorizer != nil && h.authorizer.IsOwner(caller)
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}
