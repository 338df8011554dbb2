package station

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
)

// PaymasterTransaction builds the foreign-chain transaction in which the
// reserved paymaster funds the receiver with gas * maxFeePerGas. The
// paymaster's own transfer gas is covered by the reserved amount.
func PaymasterTransaction(chain Chain, r Reservation) (*types.Transaction, error) {
	if chain.TransferGas == nil || !chain.TransferGas.IsUint64() {
		return nil, fmt.Errorf("%w: transfer gas exceeds 64 bits", ErrArithmeticOverflow)
	}
	value, overflow := new(uint256.Int).MulOverflow(r.Gas, r.MaxFeePerGas)
	if overflow {
		return nil, fmt.Errorf("%w: funding value", ErrArithmeticOverflow)
	}
	receiver := r.Receiver
	return types.NewTx(&types.DynamicFeeTx{
		ChainID:   new(big.Int).SetUint64(chain.ChainID),
		Nonce:     uint64(r.Nonce),
		GasTipCap: r.MaxFeePerGas.ToBig(),
		GasFeeCap: r.MaxFeePerGas.ToBig(),
		Gas:       chain.TransferGas.Uint64(),
		To:        &receiver,
		Value:     value.ToBig(),
	}), nil
}

func signPaymasterTransaction(ctx context.Context, signer Signer, chain Chain, r Reservation) ([]byte, error) {
	tx, err := PaymasterTransaction(chain, r)
	if err != nil {
		return nil, err
	}
	txSigner := types.LatestSignerForChainID(new(big.Int).SetUint64(chain.ChainID))
	sig, err := signer.Sign(ctx, txSigner.Hash(tx), r.TokenID)
	if err != nil {
		return nil, err
	}
	signed, err := tx.WithSignature(txSigner, sig)
	if err != nil {
		return nil, err
	}
	return signed.MarshalBinary()
}
