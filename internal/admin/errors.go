package admin

import (
	"errors"
	"net/http"

	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

// StatusFor maps station errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, station.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, station.ErrChainNotFound),
		errors.Is(err, station.ErrPaymasterNotFound),
		errors.Is(err, station.ErrReservationNotFound):
		return http.StatusNotFound
	case errors.Is(err, station.ErrChainExists),
		errors.Is(err, station.ErrPaymasterExists):
		return http.StatusConflict
	case errors.Is(err, station.ErrInsufficientBalance),
		errors.Is(err, station.ErrInsufficientFees),
		errors.Is(err, station.ErrArithmeticOverflow),
		errors.Is(err, station.ErrDivisionByZero):
		return http.StatusUnprocessableEntity
	case errors.Is(err, station.ErrNegativePrice),
		errors.Is(err, station.ErrInvalidFeeRate),
		errors.Is(err, station.ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteStationError writes err with the status StatusFor picks.
func WriteStationError(c *gin.Context, err error) {
	writeError(c, StatusFor(err), err.Error())
}
