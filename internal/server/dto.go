package server

import (
	"time"

	"github.com/0xPexy/sentra-gas-station/internal/admin"
	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// Gas fields are decimal or 0x-prefixed hex strings.
type EstimateRequest struct {
	ChainID      uint64        `json:"chainId" binding:"required"`
	Gas          string        `json:"gas" binding:"required"`
	MaxFeePerGas string        `json:"maxFeePerGas" binding:"required"`
	LocalPrice   station.Price `json:"localPrice"`
	ForeignPrice station.Price `json:"foreignPrice"`
}

type EstimateResponse struct {
	ChainID uint64 `json:"chainId"`
	Charge  string `json:"charge"`
}

type ReserveRequest struct {
	EstimateRequest
	Receiver     string `json:"receiver" binding:"required"`
	PaymentAsset string `json:"paymentAsset"`
}

type ReservationResponse struct {
	ID           uint64    `json:"id"`
	ChainID      uint64    `json:"chainId"`
	TokenID      string    `json:"tokenId"`
	Nonce        uint32    `json:"nonce"`
	Gas          string    `json:"gas"`
	MaxFeePerGas string    `json:"maxFeePerGas"`
	Amount       string    `json:"amount"`
	Charge       string    `json:"charge"`
	PaymentAsset string    `json:"paymentAsset,omitempty"`
	Receiver     string    `json:"receiver"`
	CreatedBy    string    `json:"createdBy"`
	Status       string    `json:"status"`
	SignedTx     string    `json:"signedTx,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type EventMessage struct {
	Type        station.EventType       `json:"type"`
	Reservation *ReservationResponse    `json:"reservation,omitempty"`
	Transfer    *admin.TransferResponse `json:"transfer,omitempty"`
}

func reservationDTO(r station.Reservation) ReservationResponse {
	out := ReservationResponse{
		ID:           r.ID,
		ChainID:      r.ChainID,
		TokenID:      r.TokenID,
		Nonce:        r.Nonce,
		Gas:          decString(r.Gas),
		MaxFeePerGas: decString(r.MaxFeePerGas),
		Amount:       decString(r.Amount),
		Charge:       decString(r.Charge),
		PaymentAsset: r.PaymentAsset,
		Receiver:     r.Receiver.Hex(),
		CreatedBy:    r.CreatedBy,
		Status:       string(r.Status),
		CreatedAt:    r.CreatedAt,
	}
	if len(r.SignedTx) > 0 {
		out.SignedTx = hexutil.Encode(r.SignedTx)
	}
	return out
}

func eventDTO(ev station.Event) EventMessage {
	msg := EventMessage{Type: ev.Type}
	if ev.Reservation != nil {
		r := reservationDTO(*ev.Reservation)
		msg.Reservation = &r
	}
	if ev.Transfer != nil {
		tr := admin.TransferDTO(*ev.Transfer)
		msg.Transfer = &tr
	}
	return msg
}

func decString(x *uint256.Int) string {
	if x == nil {
		return "0"
	}
	return x.Dec()
}
