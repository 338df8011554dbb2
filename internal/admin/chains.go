package admin

import (
	"net/http"

	"github.com/0xPexy/sentra-gas-station/internal/auth"
	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/gin-gonic/gin"
)

// ListChains godoc
// @Summary List configured chains
// @Tags Chains
// @Security BearerAuth
// @Produce json
// @Success 200 {array} admin.ChainResponse
// @Failure 500 {object} admin.ErrorResponse
// @Router /api/v1/chains [get]
func (h *Handler) ListChains(c *gin.Context) {
	chains, err := h.st.Chains(c.Request.Context())
	if err != nil {
		WriteStationError(c, err)
		return
	}
	out := make([]ChainResponse, 0, len(chains))
	for _, chain := range chains {
		out = append(out, chainDTO(chain))
	}
	c.JSON(http.StatusOK, out)
}

// CreateChain godoc
// @Summary Register a foreign chain
// @Description Adds a chain with its transfer gas, oracle asset id and fee rate (default 1/1).
// @Tags Chains
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateChainRequest true "Chain payload"
// @Success 201 {object} admin.ChainResponse
// @Failure 400 {object} admin.ErrorResponse
// @Failure 403 {object} admin.ErrorResponse
// @Failure 409 {object} admin.ErrorResponse
// @Router /api/v1/chains [post]
func (h *Handler) CreateChain(c *gin.Context) {
	var req CreateChainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	transferGas, err := ParseAmount("transferGas", req.TransferGas)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	rate, err := parseFeeRate(req.FeeRate)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	oracleID, err := parseOracleAssetID(req.OracleAssetID)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	ctx := c.Request.Context()
	err = h.st.AddChain(ctx, auth.Caller(c), station.ChainParams{
		ChainID:       req.ChainID,
		OracleAssetID: oracleID,
		TransferGas:   transferGas,
		FeeRate:       rate,
	})
	if err != nil {
		WriteStationError(c, err)
		return
	}
	chain, err := h.st.Chain(ctx, req.ChainID)
	if err != nil {
		WriteStationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, chainDTO(*chain))
}

// UpdateChain godoc
// @Summary Update chain parameters
// @Description Sets any of oracle asset id, transfer gas and fee rate. Either every given field is applied or none is.
// @Tags Chains
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param chainId path int true "Chain ID"
// @Param request body UpdateChainRequest true "Chain fields"
// @Success 200 {object} admin.ChainResponse
// @Failure 400 {object} admin.ErrorResponse
// @Failure 403 {object} admin.ErrorResponse
// @Failure 404 {object} admin.ErrorResponse
// @Router /api/v1/chains/{chainId} [patch]
func (h *Handler) UpdateChain(c *gin.Context) {
	chainID, ok := chainIDParam(c)
	if !ok {
		return
	}
	var req UpdateChainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	var update station.ChainUpdate
	if req.OracleAssetID != nil {
		id, err := parseOracleAssetID(*req.OracleAssetID)
		if err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		update.OracleAssetID = &id
	}
	if req.TransferGas != nil {
		gas, err := ParseAmount("transferGas", *req.TransferGas)
		if err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		update.TransferGas = gas
	}
	if req.FeeRate != nil {
		rate, err := parseFeeRate(req.FeeRate)
		if err != nil {
			writeError(c, http.StatusBadRequest, err.Error())
			return
		}
		update.FeeRate = &rate
	}
	ctx := c.Request.Context()
	if err := h.st.UpdateChain(ctx, auth.Caller(c), chainID, update); err != nil {
		WriteStationError(c, err)
		return
	}
	chain, err := h.st.Chain(ctx, chainID)
	if err != nil {
		WriteStationError(c, err)
		return
	}
	c.JSON(http.StatusOK, chainDTO(*chain))
}

// DeleteChain godoc
// @Summary Remove a chain and its paymasters
// @Tags Chains
// @Security BearerAuth
// @Param chainId path int true "Chain ID"
// @Success 204
// @Failure 403 {object} admin.ErrorResponse
// @Failure 404 {object} admin.ErrorResponse
// @Router /api/v1/chains/{chainId} [delete]
func (h *Handler) DeleteChain(c *gin.Context) {
	chainID, ok := chainIDParam(c)
	if !ok {
		return
	}
	if err := h.st.RemoveChain(c.Request.Context(), auth.Caller(c), chainID); err != nil {
		WriteStationError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func chainDTO(chain station.Chain) ChainResponse {
	out := ChainResponse{
		ChainID:       chain.ChainID,
		NextPaymaster: chain.NextPaymaster,
		OracleAssetID: chain.OracleAssetID.Hex(),
	}
	if chain.TransferGas != nil {
		out.TransferGas = chain.TransferGas.Dec()
	}
	if chain.FeeRate.Numerator != nil && chain.FeeRate.Denominator != nil {
		out.FeeRate = FeeRateDTO{
			Numerator:   chain.FeeRate.Numerator.Dec(),
			Denominator: chain.FeeRate.Denominator.Dec(),
		}
	}
	return out
}
