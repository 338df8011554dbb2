package store

import "time"

// Large integers are stored as decimal strings, at most 78 digits for 256 bits.

type Chain struct {
	ChainID            uint64    `gorm:"primaryKey;autoIncrement:false"`
	NextPaymaster      string    `gorm:"size:255"`
	TransferGas        string    `gorm:"size:78;not null"`
	FeeRateNumerator   string    `gorm:"size:39;not null"`
	FeeRateDenominator string    `gorm:"size:39;not null"`
	OracleAssetID      string    `gorm:"size:66;not null"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime"`
}

type Paymaster struct {
	ID                      uint      `gorm:"primaryKey"`
	ChainID                 uint64    `gorm:"not null;uniqueIndex:idx_paymaster_chain_token"`
	TokenID                 string    `gorm:"size:255;not null;uniqueIndex:idx_paymaster_chain_token"`
	Nonce                   uint32    `gorm:"not null"`
	MinimumAvailableBalance string    `gorm:"size:78;not null"`
	CreatedAt               time.Time `gorm:"autoCreateTime"`
	UpdatedAt               time.Time `gorm:"autoUpdateTime"`
}

type CollectedFee struct {
	AssetID   string    `gorm:"primaryKey;size:255"`
	Amount    string    `gorm:"size:39;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type AcceptedAsset struct {
	AssetID   string    `gorm:"primaryKey;size:255"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type Reservation struct {
	ID           uint64 `gorm:"primaryKey"`
	ChainID      uint64 `gorm:"index;not null"`
	TokenID      string `gorm:"size:255;not null"`
	Nonce        uint32
	Gas          string `gorm:"size:78"`
	MaxFeePerGas string `gorm:"size:78"`
	Amount       string `gorm:"size:78"`
	Charge       string `gorm:"size:39"`
	PaymentAsset string `gorm:"size:255"`
	Receiver     string `gorm:"size:42"`
	CreatedBy    string `gorm:"size:42;index"`
	Status       string `gorm:"size:32;index"`
	SignedTx     []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

type TransferInstruction struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Asset     string    `gorm:"size:255;index"`
	Amount    string    `gorm:"size:39;not null"`
	Receiver  string    `gorm:"size:255"`
	CreatedAt time.Time
}
