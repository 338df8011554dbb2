package station

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	reservations        *prometheus.CounterVec
	reservationFailures *prometheus.CounterVec
	signatures          *prometheus.CounterVec
	withdrawals         *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		reservations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gas_station",
			Name:      "reservations_total",
			Help:      "Paymaster reservations committed, by foreign chain.",
		}, []string{"chain_id"}),
		reservationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gas_station",
			Name:      "reservation_failures_total",
			Help:      "Rejected reservation requests, by reason.",
		}, []string{"reason"}),
		signatures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gas_station",
			Name:      "reservation_signatures_total",
			Help:      "Signing attempts for reserved paymaster transactions, by outcome.",
		}, []string{"outcome"}),
		withdrawals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gas_station",
			Name:      "fee_withdrawals_total",
			Help:      "Collected fee withdrawals, by asset.",
		}, []string{"asset"}),
	}
	if reg != nil {
		reg.MustRegister(m.reservations, m.reservationFailures, m.signatures, m.withdrawals)
	}
	return m
}

func (m *metrics) reserved(chainID uint64) {
	m.reservations.WithLabelValues(strconv.FormatUint(chainID, 10)).Inc()
}

func (m *metrics) rejected(err error) {
	m.reservationFailures.WithLabelValues(errorReason(err)).Inc()
}

// errorReason maps an error to a low-cardinality label.
func errorReason(err error) string {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ErrPaymasterNotFound):
		return "paymaster_not_found"
	case errors.Is(err, ErrChainNotFound):
		return "chain_not_found"
	case errors.Is(err, ErrArithmeticOverflow):
		return "arithmetic_overflow"
	case errors.Is(err, ErrNegativePrice):
		return "negative_price"
	case errors.Is(err, ErrDivisionByZero):
		return "division_by_zero"
	case errors.Is(err, ErrInvalidRequest):
		return "invalid_request"
	default:
		return "other"
	}
}
