package admin

import (
	"net/http"

	"github.com/0xPexy/sentra-gas-station/internal/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListAcceptedAssets godoc
// @Summary List accepted payment assets
// @Tags Assets
// @Security BearerAuth
// @Produce json
// @Success 200 {object} admin.AcceptedAssetsResponse
// @Router /api/v1/assets [get]
func (h *Handler) ListAcceptedAssets(c *gin.Context) {
	assets, err := h.st.AcceptedAssets(c.Request.Context())
	if err != nil {
		WriteStationError(c, err)
		return
	}
	if assets == nil {
		assets = []string{}
	}
	c.JSON(http.StatusOK, AcceptedAssetsResponse{Assets: assets})
}

// AddAcceptedAssets godoc
// @Summary Accept payment assets
// @Description Reservations may only name accepted assets as their payment asset.
// @Tags Assets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body AcceptedAssetsRequest true "Assets"
// @Success 200 {object} admin.AcceptedAssetsResponse
// @Failure 400 {object} admin.ErrorResponse
// @Failure 403 {object} admin.ErrorResponse
// @Router /api/v1/assets [post]
func (h *Handler) AddAcceptedAssets(c *gin.Context) {
	var req AcceptedAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.st.AddAcceptedAssets(c.Request.Context(), auth.Caller(c), req.Assets...); err != nil {
		WriteStationError(c, err)
		return
	}
	h.log.Info("accepted assets added", zap.Strings("assets", req.Assets))
	h.ListAcceptedAssets(c)
}

// RemoveAcceptedAsset godoc
// @Summary Stop accepting a payment asset
// @Description Fees already collected in the asset stay withdrawable.
// @Tags Assets
// @Security BearerAuth
// @Param asset path string true "Asset ID"
// @Success 204
// @Failure 403 {object} admin.ErrorResponse
// @Router /api/v1/assets/{asset} [delete]
func (h *Handler) RemoveAcceptedAsset(c *gin.Context) {
	asset := c.Param("asset")
	if err := h.st.RemoveAcceptedAssets(c.Request.Context(), auth.Caller(c), asset); err != nil {
		WriteStationError(c, err)
		return
	}
	h.log.Info("accepted asset removed", zap.String("asset", asset))
	c.Status(http.StatusNoContent)
}
