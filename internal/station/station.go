package station

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Signer is the external signing service. path selects the derived key.
type Signer interface {
	Sign(ctx context.Context, payload common.Hash, path string) ([]byte, error)
	Address(path string) (common.Address, error)
}

type EventType string

const (
	EventReservationCreated EventType = "reservation.created"
	EventReservationSigned  EventType = "reservation.signed"
	EventFeesWithdrawn      EventType = "fees.withdrawn"
)

type Event struct {
	Type        EventType
	Reservation *Reservation
	Transfer    *TransferInstruction
}

// Publisher receives events after the state transition that produced them
// has been committed.
type Publisher interface {
	Publish(Event)
}

type Options struct {
	Store      Store
	Authorizer Authorizer
	Signer     Signer
	Publisher  Publisher
	// Owner receives withdrawn fees when no receiver is given.
	Owner      string
	Logger     *zap.Logger
	Registerer prometheus.Registerer
	Now        func() time.Time
}

// Station serves gas estimates and paymaster reservations for the
// configured foreign chains. Calls are processed one at a time.
type Station struct {
	mu        sync.Mutex
	store     Store
	auth      Authorizer
	signer    Signer
	publisher Publisher
	owner     string
	logger    *zap.Logger
	metrics   *metrics
	now       func() time.Time
}

func New(opts Options) *Station {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	auth := opts.Authorizer
	if auth == nil {
		auth = OwnerAuthorizer{Owner: opts.Owner}
	}
	return &Station{
		store:     opts.Store,
		auth:      auth,
		signer:    opts.Signer,
		publisher: opts.Publisher,
		owner:     opts.Owner,
		logger:    logger,
		metrics:   newMetrics(opts.Registerer),
		now:       now,
	}
}

type GasRequest struct {
	ChainID      uint64
	Gas          *uint256.Int
	MaxFeePerGas *uint256.Int
	LocalPrice   Price
	ForeignPrice Price
}

func (r GasRequest) validate() error {
	if r.Gas == nil || r.MaxFeePerGas == nil {
		return fmt.Errorf("%w: gas and maxFeePerGas are required", ErrInvalidRequest)
	}
	return nil
}

type ReserveRequest struct {
	GasRequest
	Receiver common.Address
	// PaymentAsset, when set, accumulates the charge as a collected fee. It
	// must be one of the accepted assets.
	PaymentAsset string
}

// EstimateGasCost prices a request in the local asset without touching any
// paymaster.
func (s *Station) EstimateGasCost(ctx context.Context, req GasRequest) (*uint256.Int, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var charge *uint256.Int
	err := s.store.View(ctx, func(tx Tx) error {
		chain, err := tx.Chain(req.ChainID)
		if err != nil {
			return err
		}
		amount, err := chain.RequiredGasCost(req.Gas, req.MaxFeePerGas)
		if err != nil {
			return err
		}
		charge, err = chain.ConvertGasCost(amount, req.ForeignPrice, req.LocalPrice)
		return err
	})
	if err != nil {
		return nil, err
	}
	return charge, nil
}

// Reserve picks the next paymaster of the chain, deducts the native gas cost
// from its balance and allocates it a nonce. Nothing is persisted unless
// every step succeeds.
func (s *Station) Reserve(ctx context.Context, caller string, req ReserveRequest) (*Reservation, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var out *Reservation
	err := s.store.Update(ctx, func(tx Tx) error {
		chain, err := tx.Chain(req.ChainID)
		if err != nil {
			return err
		}
		pm, err := selectNext(tx, chain)
		if err != nil {
			return err
		}
		amount, err := chain.RequiredGasCost(req.Gas, req.MaxFeePerGas)
		if err != nil {
			return err
		}
		charge, err := chain.ConvertGasCost(amount, req.ForeignPrice, req.LocalPrice)
		if err != nil {
			return err
		}
		if err := pm.Deduct(amount); err != nil {
			return err
		}
		nonce, err := pm.NextNonce()
		if err != nil {
			return err
		}
		if err := tx.PutPaymaster(chain.ChainID, pm); err != nil {
			return err
		}
		if req.PaymentAsset != "" {
			if err := CollectFee(tx, req.PaymentAsset, charge); err != nil {
				return err
			}
		}
		r := &Reservation{
			ChainID:      chain.ChainID,
			TokenID:      pm.TokenID,
			Nonce:        nonce,
			Gas:          req.Gas.Clone(),
			MaxFeePerGas: req.MaxFeePerGas.Clone(),
			Amount:       amount,
			Charge:       charge,
			PaymentAsset: req.PaymentAsset,
			Receiver:     req.Receiver,
			CreatedBy:    NormalizeAddress(caller),
			Status:       ReservationPending,
			CreatedAt:    s.now().UTC(),
		}
		if err := tx.PutReservation(r); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		s.metrics.rejected(err)
		s.logger.Info("reservation rejected", zap.Uint64("chainId", req.ChainID), zap.Error(err))
		return nil, err
	}
	s.metrics.reserved(out.ChainID)
	s.logger.Info("reservation created",
		zap.Uint64("id", out.ID),
		zap.Uint64("chainId", out.ChainID),
		zap.String("paymaster", out.TokenID),
		zap.Uint32("nonce", out.Nonce),
		zap.String("amount", out.Amount.Dec()),
		zap.String("charge", out.Charge.Dec()),
	)
	s.publish(Event{Type: EventReservationCreated, Reservation: out})
	return out, nil
}

// SignReservation hands the paymaster transaction of a reservation to the
// signing service. A failed signature does not release the reserved balance
// or nonce; only an administrative adjustment does.
func (s *Station) SignReservation(ctx context.Context, id uint64) (*Reservation, error) {
	if s.signer == nil {
		return nil, errors.New("station: no signer configured")
	}
	var (
		r     *Reservation
		chain *Chain
	)
	s.mu.Lock()
	err := s.store.View(ctx, func(tx Tx) error {
		var err error
		if r, err = tx.Reservation(id); err != nil {
			return err
		}
		chain, err = tx.Chain(r.ChainID)
		return err
	})
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if r.Status == ReservationSigned {
		return r, nil
	}

	raw, signErr := signPaymasterTransaction(ctx, s.signer, *chain, *r)
	status := ReservationSigned
	if signErr != nil {
		status = ReservationSignFailed
		s.metrics.signatures.WithLabelValues("failed").Inc()
		s.logger.Warn("sign reservation", zap.Uint64("id", id), zap.Error(signErr))
	} else {
		s.metrics.signatures.WithLabelValues("signed").Inc()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.store.Update(ctx, func(tx Tx) error {
		current, err := tx.Reservation(id)
		if err != nil {
			return err
		}
		current.Status = status
		current.SignedTx = raw
		if err := tx.PutReservation(current); err != nil {
			return err
		}
		r = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	if signErr != nil {
		return r, fmt.Errorf("sign reservation %d: %w", id, signErr)
	}
	s.publish(Event{Type: EventReservationSigned, Reservation: r})
	return r, nil
}

func (s *Station) Reservation(ctx context.Context, id uint64) (*Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out *Reservation
	err := s.store.View(ctx, func(tx Tx) error {
		var err error
		out, err = tx.Reservation(id)
		return err
	})
	return out, err
}

func (s *Station) Reservations(ctx context.Context, filter ReservationFilter) ([]Reservation, error) {
	filter.CreatedBy = NormalizeAddress(filter.CreatedBy)
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Reservation
	err := s.store.View(ctx, func(tx Tx) error {
		var err error
		out, err = tx.Reservations(filter)
		return err
	})
	return out, err
}

func (s *Station) publish(ev Event) {
	if s.publisher != nil {
		s.publisher.Publish(ev)
	}
}
