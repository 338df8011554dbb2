package station

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Store runs state transitions. Update must apply everything fn wrote, or
// nothing when fn returns an error.
type Store interface {
	View(ctx context.Context, fn func(Tx) error) error
	Update(ctx context.Context, fn func(Tx) error) error
}

// Tx is the key schema of the persisted state:
//
//	chain id             -> Chain
//	(chain id, token id) -> Paymaster, ascending by token id
//	asset id             -> collected fee
//	asset id             -> accepted payment asset
//	reservation id       -> Reservation
//	transfer id          -> TransferInstruction
type Tx interface {
	Chain(chainID uint64) (*Chain, error)
	Chains() ([]Chain, error)
	PutChain(chain *Chain) error
	// DeleteChain removes the chain and all of its paymasters.
	DeleteChain(chainID uint64) error

	Paymaster(chainID uint64, tokenID string) (*Paymaster, error)
	Paymasters(chainID uint64) ([]Paymaster, error)
	PaymasterKeys(chainID uint64) KeySet
	PutPaymaster(chainID uint64, pm *Paymaster) error
	DeletePaymaster(chainID uint64, tokenID string) error

	// CollectedFee returns nil when no entry exists for asset.
	CollectedFee(asset string) (*uint256.Int, error)
	CollectedFees() (map[string]*uint256.Int, error)
	PutCollectedFee(asset string, amount *uint256.Int) error

	// AcceptedAssets returns the accepted payment assets in ascending order.
	AcceptedAssets() ([]string, error)
	IsAcceptedAsset(asset string) (bool, error)
	PutAcceptedAsset(asset string) error
	DeleteAcceptedAsset(asset string) error

	// PutReservation assigns an id when r.ID is zero.
	PutReservation(r *Reservation) error
	Reservation(id uint64) (*Reservation, error)
	Reservations(filter ReservationFilter) ([]Reservation, error)

	PutTransfer(t *TransferInstruction) error
}

type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "pending"
	ReservationSigned     ReservationStatus = "signed"
	ReservationSignFailed ReservationStatus = "sign_failed"
)

// Reservation is a paymaster commitment made for one cross-chain request.
// Amount was deducted from the paymaster in native units; Charge is what the
// caller pays in the local asset.
type Reservation struct {
	ID           uint64
	ChainID      uint64
	TokenID      string
	Nonce        uint32
	Gas          *uint256.Int
	MaxFeePerGas *uint256.Int
	Amount       *uint256.Int
	Charge       *uint256.Int
	PaymentAsset string
	Receiver     common.Address
	CreatedBy    string
	Status       ReservationStatus
	SignedTx     []byte
	CreatedAt    time.Time
}

type ReservationFilter struct {
	CreatedBy string
	Offset    int
	Limit     int
}

// TransferInstruction asks the asset layer to move collected fees out.
type TransferInstruction struct {
	ID        string
	Asset     string
	Amount    *uint256.Int
	Receiver  string
	CreatedAt time.Time
}
