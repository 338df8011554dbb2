package admin

import (
	"net/http"
	"strings"

	"github.com/0xPexy/sentra-gas-station/internal/auth"
	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
)

// ListPaymasters godoc
// @Summary List paymasters of a chain
// @Description Paymasters in rotation order with their derived foreign addresses.
// @Tags Paymasters
// @Security BearerAuth
// @Produce json
// @Param chainId path int true "Chain ID"
// @Success 200 {array} admin.PaymasterResponse
// @Failure 404 {object} admin.ErrorResponse
// @Router /api/v1/chains/{chainId}/paymasters [get]
func (h *Handler) ListPaymasters(c *gin.Context) {
	chainID, ok := chainIDParam(c)
	if !ok {
		return
	}
	views, err := h.st.Paymasters(c.Request.Context(), chainID)
	if err != nil {
		WriteStationError(c, err)
		return
	}
	out := make([]PaymasterResponse, 0, len(views))
	for _, v := range views {
		out = append(out, paymasterDTO(v))
	}
	c.JSON(http.StatusOK, out)
}

// CreatePaymaster godoc
// @Summary Add a paymaster to a chain
// @Tags Paymasters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param chainId path int true "Chain ID"
// @Param request body CreatePaymasterRequest true "Paymaster payload"
// @Success 201 {object} admin.PaymasterResponse
// @Failure 400 {object} admin.ErrorResponse
// @Failure 403 {object} admin.ErrorResponse
// @Failure 404 {object} admin.ErrorResponse
// @Failure 409 {object} admin.ErrorResponse
// @Router /api/v1/chains/{chainId}/paymasters [post]
func (h *Handler) CreatePaymaster(c *gin.Context) {
	chainID, ok := chainIDParam(c)
	if !ok {
		return
	}
	var req CreatePaymasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	tokenID := strings.TrimSpace(req.TokenID)
	balance := new(uint256.Int)
	if req.Balance != "" {
		var err error
		if balance, err = ParseAmount("balance", req.Balance); err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	ctx := c.Request.Context()
	if err := h.st.AddPaymaster(ctx, auth.Caller(c), chainID, tokenID, req.Nonce, balance); err != nil {
		WriteStationError(c, err)
		return
	}
	h.respondPaymaster(c, http.StatusCreated, chainID, tokenID)
}

// UpdatePaymaster godoc
// @Summary Adjust a paymaster
// @Description Sets the balance, credits it, or sets the nonce in one update. Lowering the nonce is allowed for recovery.
// @Tags Paymasters
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param chainId path int true "Chain ID"
// @Param tokenId path string true "Token ID"
// @Param request body UpdatePaymasterRequest true "Paymaster fields"
// @Success 200 {object} admin.PaymasterResponse
// @Failure 400 {object} admin.ErrorResponse
// @Failure 403 {object} admin.ErrorResponse
// @Failure 404 {object} admin.ErrorResponse
// @Failure 422 {object} admin.ErrorResponse
// @Router /api/v1/chains/{chainId}/paymasters/{tokenId} [patch]
func (h *Handler) UpdatePaymaster(c *gin.Context) {
	chainID, ok := chainIDParam(c)
	if !ok {
		return
	}
	tokenID := c.Param("tokenId")
	var req UpdatePaymasterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	update := station.PaymasterUpdate{Nonce: req.Nonce}
	if req.Balance != nil {
		balance, err := ParseAmount("balance", *req.Balance)
		if err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		update.Balance = balance
	}
	if req.IncreaseBy != nil {
		amount, err := ParseAmount("increaseBy", *req.IncreaseBy)
		if err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		update.IncreaseBy = amount
	}
	if err := h.st.UpdatePaymaster(c.Request.Context(), auth.Caller(c), chainID, tokenID, update); err != nil {
		WriteStationError(c, err)
		return
	}
	h.respondPaymaster(c, http.StatusOK, chainID, tokenID)
}

// DeletePaymaster godoc
// @Summary Remove a paymaster from rotation
// @Tags Paymasters
// @Security BearerAuth
// @Param chainId path int true "Chain ID"
// @Param tokenId path string true "Token ID"
// @Success 204
// @Failure 403 {object} admin.ErrorResponse
// @Failure 404 {object} admin.ErrorResponse
// @Router /api/v1/chains/{chainId}/paymasters/{tokenId} [delete]
func (h *Handler) DeletePaymaster(c *gin.Context) {
	chainID, ok := chainIDParam(c)
	if !ok {
		return
	}
	if err := h.st.RemovePaymaster(c.Request.Context(), auth.Caller(c), chainID, c.Param("tokenId")); err != nil {
		WriteStationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) respondPaymaster(c *gin.Context, status int, chainID uint64, tokenID string) {
	views, err := h.st.Paymasters(c.Request.Context(), chainID)
	if err != nil {
		WriteStationError(c, err)
		return
	}
	for _, v := range views {
		if v.TokenID == tokenID {
			c.JSON(status, paymasterDTO(v))
			return
		}
	}
	WriteStationError(c, station.ErrPaymasterNotFound)
}

func paymasterDTO(v station.PaymasterView) PaymasterResponse {
	out := PaymasterResponse{
		TokenID: v.TokenID,
		Nonce:   v.Nonce,
	}
	if v.MinimumAvailableBalance != nil {
		out.MinimumAvailableBalance = v.MinimumAvailableBalance.Dec()
	}
	if v.ForeignAddress != (common.Address{}) {
		out.ForeignAddress = v.ForeignAddress.Hex()
	}
	return out
}
