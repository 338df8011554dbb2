package admin

import (
	"net/http"

	"github.com/0xPexy/sentra-gas-station/internal/auth"
	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	auth       *auth.Service
	st         *station.Station
	authorizer station.Authorizer
	log        *zap.Logger
}

func NewHandler(a *auth.Service, st *station.Station, authorizer station.Authorizer, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{auth: a, st: st, authorizer: authorizer, log: log}
}

// Nonce godoc
// @Summary Issue SIWE nonce
// @Description Returns a short-lived nonce for SIWE authentication.
// @Tags Auth
// @Produce json
// @Success 200 {object} admin.NonceResponse
// @Failure 500 {object} admin.ErrorResponse
// @Router /auth/nonce [get]
func (h *Handler) Nonce(c *gin.Context) {
	nonce, err := h.auth.IssueNonce()
	if err != nil {
		writeError(c, http.StatusInternalServerError, "failed to issue nonce")
		return
	}
	c.JSON(http.StatusOK, NonceResponse{Nonce: nonce})
}

// Login godoc
// @Summary Wallet login
// @Description Authenticates a wallet via SIWE and returns a JWT access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} admin.ErrorResponse
// @Failure 401 {object} admin.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.auth.LoginWithSIWE(req.Message, req.Signature)
	if err != nil {
		writeError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Me godoc
// @Summary Get current caller
// @Description Returns the authenticated wallet address and whether it owns the station.
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} admin.MeResponse
// @Failure 401 {object} admin.ErrorResponse
// @Router /api/v1/me [get]
func (h *Handler) Me(c *gin.Context) {
	caller := auth.Caller(c)
	c.JSON(http.StatusOK, MeResponse{
		Address: caller,
		IsOwner: h.authorizer != nil && h.authorizer.IsOwner(caller),
	})
}
