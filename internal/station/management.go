package station

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

type ChainParams struct {
	ChainID       uint64
	OracleAssetID common.Hash
	TransferGas   *uint256.Int
	FeeRate       FeeRate
}

// PaymasterView is a paymaster together with the foreign address of its key.
type PaymasterView struct {
	Paymaster
	ForeignAddress common.Address
}

// mutate runs fn as a privileged state transition. The owner check happens
// before anything is read or written.
func (s *Station) mutate(ctx context.Context, caller, op string, fn func(Tx) error) error {
	if !s.auth.IsOwner(caller) {
		s.logger.Warn("unauthorized call", zap.String("op", op), zap.String("caller", caller))
		return ErrUnauthorized
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Update(ctx, fn); err != nil {
		return err
	}
	s.logger.Info("admin update", zap.String("op", op))
	return nil
}

func withChain(tx Tx, chainID uint64, fn func(*Chain) error) error {
	chain, err := tx.Chain(chainID)
	if err != nil {
		return err
	}
	if err := fn(chain); err != nil {
		return err
	}
	return tx.PutChain(chain)
}

func withPaymaster(tx Tx, chainID uint64, tokenID string, fn func(*Paymaster) error) error {
	if _, err := tx.Chain(chainID); err != nil {
		return err
	}
	pm, err := tx.Paymaster(chainID, tokenID)
	if err != nil {
		return err
	}
	if err := fn(pm); err != nil {
		return err
	}
	return tx.PutPaymaster(chainID, pm)
}

func (s *Station) AddChain(ctx context.Context, caller string, p ChainParams) error {
	return s.mutate(ctx, caller, "add_chain", func(tx Tx) error {
		rate, err := NewFeeRate(p.FeeRate.Numerator, p.FeeRate.Denominator)
		if err != nil {
			return err
		}
		if p.TransferGas == nil {
			return fmt.Errorf("%w: transfer gas is required", ErrInvalidRequest)
		}
		if _, err := tx.Chain(p.ChainID); err == nil {
			return fmt.Errorf("%w: %d", ErrChainExists, p.ChainID)
		} else if !errors.Is(err, ErrChainNotFound) {
			return err
		}
		return tx.PutChain(&Chain{
			ChainID:       p.ChainID,
			TransferGas:   p.TransferGas.Clone(),
			FeeRate:       rate,
			OracleAssetID: p.OracleAssetID,
		})
	})
}

// RemoveChain deletes the chain together with its paymasters.
func (s *Station) RemoveChain(ctx context.Context, caller string, chainID uint64) error {
	return s.mutate(ctx, caller, "remove_chain", func(tx Tx) error {
		if _, err := tx.Chain(chainID); err != nil {
			return err
		}
		return tx.DeleteChain(chainID)
	})
}

func (s *Station) SetOracleAssetID(ctx context.Context, caller string, chainID uint64, id common.Hash) error {
	return s.mutate(ctx, caller, "set_oracle_asset_id", func(tx Tx) error {
		return withChain(tx, chainID, func(c *Chain) error {
			c.OracleAssetID = id
			return nil
		})
	})
}

func (s *Station) SetTransferGas(ctx context.Context, caller string, chainID uint64, gas *uint256.Int) error {
	return s.mutate(ctx, caller, "set_transfer_gas", func(tx Tx) error {
		if gas == nil {
			return fmt.Errorf("%w: transfer gas is required", ErrInvalidRequest)
		}
		return withChain(tx, chainID, func(c *Chain) error {
			c.TransferGas = gas.Clone()
			return nil
		})
	})
}

func (s *Station) SetFeeRate(ctx context.Context, caller string, chainID uint64, rate FeeRate) error {
	return s.mutate(ctx, caller, "set_fee_rate", func(tx Tx) error {
		checked, err := NewFeeRate(rate.Numerator, rate.Denominator)
		if err != nil {
			return err
		}
		return withChain(tx, chainID, func(c *Chain) error {
			c.FeeRate = checked
			return nil
		})
	})
}

// AddPaymaster registers tokenID on the chain. A nil balance starts at zero.
func (s *Station) AddPaymaster(ctx context.Context, caller string, chainID uint64, tokenID string, nonce uint32, balance *uint256.Int) error {
	return s.mutate(ctx, caller, "add_paymaster", func(tx Tx) error {
		if tokenID == "" {
			return fmt.Errorf("%w: token id is required", ErrInvalidRequest)
		}
		if _, err := tx.Chain(chainID); err != nil {
			return err
		}
		if _, err := tx.Paymaster(chainID, tokenID); err == nil {
			return fmt.Errorf("%w: %q on chain %d", ErrPaymasterExists, tokenID, chainID)
		} else if !errors.Is(err, ErrPaymasterNotFound) {
			return err
		}
		if balance == nil {
			balance = new(uint256.Int)
		}
		return tx.PutPaymaster(chainID, &Paymaster{
			TokenID:                 tokenID,
			Nonce:                   nonce,
			MinimumAvailableBalance: balance.Clone(),
		})
	})
}

// RemovePaymaster drops the paymaster from rotation. Reservations already
// made against it stay valid and may still be signed.
func (s *Station) RemovePaymaster(ctx context.Context, caller string, chainID uint64, tokenID string) error {
	return s.mutate(ctx, caller, "remove_paymaster", func(tx Tx) error {
		if _, err := tx.Chain(chainID); err != nil {
			return err
		}
		if _, err := tx.Paymaster(chainID, tokenID); err != nil {
			return err
		}
		return tx.DeletePaymaster(chainID, tokenID)
	})
}

func (s *Station) SetPaymasterBalance(ctx context.Context, caller string, chainID uint64, tokenID string, balance *uint256.Int) error {
	return s.mutate(ctx, caller, "set_paymaster_balance", func(tx Tx) error {
		if balance == nil {
			return fmt.Errorf("%w: balance is required", ErrInvalidRequest)
		}
		return withPaymaster(tx, chainID, tokenID, func(pm *Paymaster) error {
			pm.MinimumAvailableBalance = balance.Clone()
			return nil
		})
	})
}

func (s *Station) IncreasePaymasterBalance(ctx context.Context, caller string, chainID uint64, tokenID string, amount *uint256.Int) error {
	return s.mutate(ctx, caller, "increase_paymaster_balance", func(tx Tx) error {
		if amount == nil {
			return fmt.Errorf("%w: amount is required", ErrInvalidRequest)
		}
		return withPaymaster(tx, chainID, tokenID, func(pm *Paymaster) error {
			return pm.Credit(amount)
		})
	})
}

func (s *Station) SetPaymasterNonce(ctx context.Context, caller string, chainID uint64, tokenID string, nonce uint32) error {
	return s.mutate(ctx, caller, "set_paymaster_nonce", func(tx Tx) error {
		return withPaymaster(tx, chainID, tokenID, func(pm *Paymaster) error {
			pm.Nonce = nonce
			return nil
		})
	})
}

// ChainUpdate lists chain settings to change. Nil fields are left as they are.
type ChainUpdate struct {
	OracleAssetID *common.Hash
	TransferGas   *uint256.Int
	FeeRate       *FeeRate
}

// UpdateChain applies every field of u in one transition.
func (s *Station) UpdateChain(ctx context.Context, caller string, chainID uint64, u ChainUpdate) error {
	return s.mutate(ctx, caller, "update_chain", func(tx Tx) error {
		var rate FeeRate
		if u.FeeRate != nil {
			var err error
			if rate, err = NewFeeRate(u.FeeRate.Numerator, u.FeeRate.Denominator); err != nil {
				return err
			}
		}
		return withChain(tx, chainID, func(c *Chain) error {
			if u.OracleAssetID != nil {
				c.OracleAssetID = *u.OracleAssetID
			}
			if u.TransferGas != nil {
				c.TransferGas = u.TransferGas.Clone()
			}
			if u.FeeRate != nil {
				c.FeeRate = rate
			}
			return nil
		})
	})
}

// PaymasterUpdate lists paymaster fields to change. Balance is applied
// before IncreaseBy.
type PaymasterUpdate struct {
	Balance    *uint256.Int
	IncreaseBy *uint256.Int
	Nonce      *uint32
}

// UpdatePaymaster applies every field of u in one transition.
func (s *Station) UpdatePaymaster(ctx context.Context, caller string, chainID uint64, tokenID string, u PaymasterUpdate) error {
	return s.mutate(ctx, caller, "update_paymaster", func(tx Tx) error {
		return withPaymaster(tx, chainID, tokenID, func(pm *Paymaster) error {
			if u.Balance != nil {
				pm.MinimumAvailableBalance = u.Balance.Clone()
			}
			if u.IncreaseBy != nil {
				if err := pm.Credit(u.IncreaseBy); err != nil {
					return err
				}
			}
			if u.Nonce != nil {
				pm.Nonce = *u.Nonce
			}
			return nil
		})
	})
}

// AddAcceptedAssets lets reservations collect fees in the given assets.
// Assets already accepted are kept.
func (s *Station) AddAcceptedAssets(ctx context.Context, caller string, assets ...string) error {
	return s.mutate(ctx, caller, "add_accepted_assets", func(tx Tx) error {
		for _, asset := range assets {
			if asset == "" {
				return fmt.Errorf("%w: asset id is required", ErrInvalidRequest)
			}
			if err := tx.PutAcceptedAsset(asset); err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveAcceptedAssets stops new fees in the given assets. Fees already
// collected in them can still be withdrawn.
func (s *Station) RemoveAcceptedAssets(ctx context.Context, caller string, assets ...string) error {
	return s.mutate(ctx, caller, "remove_accepted_assets", func(tx Tx) error {
		for _, asset := range assets {
			if err := tx.DeleteAcceptedAsset(asset); err != nil {
				return err
			}
		}
		return nil
	})
}

// AcceptedAssets lists the accepted payment assets in ascending order.
func (s *Station) AcceptedAssets(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	err := s.store.View(ctx, func(tx Tx) error {
		var err error
		out, err = tx.AcceptedAssets()
		return err
	})
	return out, err
}

// WithdrawCollectedFees moves collected fees of asset to receiver, or to the
// owner when receiver is empty. A nil amount withdraws everything.
func (s *Station) WithdrawCollectedFees(ctx context.Context, caller, asset string, amount *uint256.Int, receiver string) (*TransferInstruction, error) {
	if receiver == "" {
		receiver = s.owner
	}
	var out *TransferInstruction
	err := s.mutate(ctx, caller, "withdraw_collected_fees", func(tx Tx) error {
		var err error
		out, err = WithdrawFee(tx, asset, amount, receiver, s.now().UTC())
		return err
	})
	if err != nil {
		return nil, err
	}
	s.metrics.withdrawals.WithLabelValues(asset).Inc()
	s.publish(Event{Type: EventFeesWithdrawn, Transfer: out})
	return out, nil
}

func (s *Station) Chains(ctx context.Context) ([]Chain, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Chain
	err := s.store.View(ctx, func(tx Tx) error {
		var err error
		out, err = tx.Chains()
		return err
	})
	return out, err
}

func (s *Station) Chain(ctx context.Context, chainID uint64) (*Chain, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out *Chain
	err := s.store.View(ctx, func(tx Tx) error {
		var err error
		out, err = tx.Chain(chainID)
		return err
	})
	return out, err
}

func (s *Station) Paymasters(ctx context.Context, chainID uint64) ([]PaymasterView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []Paymaster
	err := s.store.View(ctx, func(tx Tx) error {
		if _, err := tx.Chain(chainID); err != nil {
			return err
		}
		var err error
		list, err = tx.Paymasters(chainID)
		return err
	})
	if err != nil {
		return nil, err
	}
	out := make([]PaymasterView, 0, len(list))
	for _, pm := range list {
		view := PaymasterView{Paymaster: pm}
		if s.signer != nil {
			addr, err := s.signer.Address(pm.TokenID)
			if err != nil {
				return nil, fmt.Errorf("derive address for %q: %w", pm.TokenID, err)
			}
			view.ForeignAddress = addr
		}
		out = append(out, view)
	}
	return out, nil
}

func (s *Station) CollectedFees(ctx context.Context) (map[string]*uint256.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out map[string]*uint256.Int
	err := s.store.View(ctx, func(tx Tx) error {
		var err error
		out, err = tx.CollectedFees()
		return err
	})
	return out, err
}
