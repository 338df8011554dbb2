package admin

import (
	"net/http"
	"sort"
	"strings"

	"github.com/0xPexy/sentra-gas-station/internal/auth"
	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// ListFees godoc
// @Summary List collected fees
// @Tags Fees
// @Security BearerAuth
// @Produce json
// @Success 200 {array} admin.FeeResponse
// @Failure 403 {object} admin.ErrorResponse
// @Router /api/v1/fees [get]
func (h *Handler) ListFees(c *gin.Context) {
	if h.authorizer != nil && !h.authorizer.IsOwner(auth.Caller(c)) {
		WriteStationError(c, station.ErrUnauthorized)
		return
	}
	fees, err := h.st.CollectedFees(c.Request.Context())
	if err != nil {
		WriteStationError(c, err)
		return
	}
	out := make([]FeeResponse, 0, len(fees))
	for asset, amount := range fees {
		out = append(out, FeeResponse{Asset: asset, Amount: amount.Dec()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Asset < out[j].Asset })
	c.JSON(http.StatusOK, out)
}

// WithdrawFees godoc
// @Summary Withdraw collected fees
// @Description Emits a transfer instruction for the asset. Omitting amount withdraws everything; omitting receiver pays the owner.
// @Tags Fees
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param asset path string true "Asset ID"
// @Param request body WithdrawRequest false "Withdrawal"
// @Success 201 {object} admin.TransferResponse
// @Failure 400 {object} admin.ErrorResponse
// @Failure 403 {object} admin.ErrorResponse
// @Failure 422 {object} admin.ErrorResponse
// @Router /api/v1/fees/{asset}/withdraw [post]
func (h *Handler) WithdrawFees(c *gin.Context) {
	var req WithdrawRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	var amount *uint256.Int
	if req.Amount != nil {
		var err error
		if amount, err = ParseAmount("amount", *req.Amount); err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	receiver := strings.TrimSpace(req.Receiver)
	if receiver != "" && !common.IsHexAddress(receiver) {
		writeError(c, http.StatusBadRequest, "receiver must be a hex address")
		return
	}
	asset := c.Param("asset")
	tr, err := h.st.WithdrawCollectedFees(c.Request.Context(), auth.Caller(c), asset, amount, station.NormalizeAddress(receiver))
	if err != nil {
		WriteStationError(c, err)
		return
	}
	h.log.Info("fees withdrawn", zap.String("asset", asset), zap.String("amount", tr.Amount.Dec()), zap.String("transfer", tr.ID))
	c.JSON(http.StatusCreated, TransferDTO(*tr))
}

func TransferDTO(tr station.TransferInstruction) TransferResponse {
	return TransferResponse{
		ID:        tr.ID,
		Asset:     tr.Asset,
		Amount:    tr.Amount.Dec(),
		Receiver:  tr.Receiver,
		CreatedAt: tr.CreatedAt,
	}
}
