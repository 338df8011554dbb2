package admin

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type NonceResponse struct {
	Nonce string `json:"nonce"`
}

type LoginRequest struct {
	Message   string `json:"message" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type MeResponse struct {
	Address string `json:"address"`
	IsOwner bool   `json:"isOwner"`
}

// Amounts are decimal strings; they may exceed 64 bits.

type FeeRateDTO struct {
	Numerator   string `json:"numerator"`
	Denominator string `json:"denominator"`
}

type CreateChainRequest struct {
	ChainID       uint64      `json:"chainId" binding:"required"`
	OracleAssetID string      `json:"oracleAssetId"`
	TransferGas   string      `json:"transferGas" binding:"required"`
	FeeRate       *FeeRateDTO `json:"feeRate"`
}

type UpdateChainRequest struct {
	OracleAssetID *string     `json:"oracleAssetId"`
	TransferGas   *string     `json:"transferGas"`
	FeeRate       *FeeRateDTO `json:"feeRate"`
}

type ChainResponse struct {
	ChainID       uint64     `json:"chainId"`
	NextPaymaster string     `json:"nextPaymaster"`
	TransferGas   string     `json:"transferGas"`
	FeeRate       FeeRateDTO `json:"feeRate"`
	OracleAssetID string     `json:"oracleAssetId"`
}

type CreatePaymasterRequest struct {
	TokenID string `json:"tokenId" binding:"required"`
	Nonce   uint32 `json:"nonce"`
	Balance string `json:"balance"`
}

// UpdatePaymasterRequest applies Balance before IncreaseBy when both are set.
type UpdatePaymasterRequest struct {
	Balance    *string `json:"balance"`
	IncreaseBy *string `json:"increaseBy"`
	Nonce      *uint32 `json:"nonce"`
}

type PaymasterResponse struct {
	TokenID                 string `json:"tokenId"`
	Nonce                   uint32 `json:"nonce"`
	MinimumAvailableBalance string `json:"minimumAvailableBalance"`
	ForeignAddress          string `json:"foreignAddress,omitempty"`
}

type FeeResponse struct {
	Asset  string `json:"asset"`
	Amount string `json:"amount"`
}

type WithdrawRequest struct {
	// Amount withdraws everything when omitted.
	Amount   *string `json:"amount"`
	Receiver string  `json:"receiver"`
}

type TransferResponse struct {
	ID        string    `json:"id"`
	Asset     string    `json:"asset"`
	Amount    string    `json:"amount"`
	Receiver  string    `json:"receiver"`
	CreatedAt time.Time `json:"createdAt"`
}

type AcceptedAssetsRequest struct {
	Assets []string `json:"assets" binding:"required,min=1"`
}

type AcceptedAssetsResponse struct {
	Assets []string `json:"assets"`
}
