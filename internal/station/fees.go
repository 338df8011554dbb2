package station

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// CollectFee adds amount to the fees accumulated for asset. Only accepted
// assets collect fees.
func CollectFee(tx Tx, asset string, amount *uint256.Int) error {
	accepted, err := tx.IsAcceptedAsset(asset)
	if err != nil {
		return err
	}
	if !accepted {
		return fmt.Errorf("%w: payment asset %q is not accepted", ErrInvalidRequest, asset)
	}
	current, err := tx.CollectedFee(asset)
	if err != nil {
		return err
	}
	if current == nil {
		current = new(uint256.Int)
	}
	next, err := checkedAdd(current, amount)
	if err != nil || !fitsUint128(next) {
		return fmt.Errorf("collect %s: %w", asset, ErrArithmeticOverflow)
	}
	return tx.PutCollectedFee(asset, next)
}

// WithdrawFee takes amount, or everything when amount is nil, out of the
// fees collected for asset and records a transfer to receiver.
func WithdrawFee(tx Tx, asset string, amount *uint256.Int, receiver string, now time.Time) (*TransferInstruction, error) {
	current, err := tx.CollectedFee(asset)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, fmt.Errorf("%w: no fee entry for asset %q", ErrInsufficientFees, asset)
	}
	if amount == nil {
		amount = current.Clone()
	}
	if amount.Gt(current) {
		return nil, fmt.Errorf("%w: %s collected, %s requested", ErrInsufficientFees, current.Dec(), amount.Dec())
	}
	if err := tx.PutCollectedFee(asset, new(uint256.Int).Sub(current, amount)); err != nil {
		return nil, err
	}
	transfer := &TransferInstruction{
		ID:        uuid.NewString(),
		Asset:     asset,
		Amount:    amount.Clone(),
		Receiver:  receiver,
		CreatedAt: now,
	}
	if err := tx.PutTransfer(transfer); err != nil {
		return nil, err
	}
	return transfer, nil
}
