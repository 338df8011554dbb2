package station

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Chain is the configuration of one foreign chain. NextPaymaster is the
// rotation cursor and may name a paymaster that has since been removed.
type Chain struct {
	ChainID       uint64
	NextPaymaster string
	TransferGas   *uint256.Int
	FeeRate       FeeRate
	OracleAssetID common.Hash
}

func (c Chain) Clone() Chain {
	out := c
	if c.TransferGas != nil {
		out.TransferGas = c.TransferGas.Clone()
	}
	out.FeeRate = c.FeeRate.Clone()
	return out
}

// RequiredGasCost is the native quantity a paymaster fronts for a request:
// (gas + transferGas) * maxFeePerGas.
func (c Chain) RequiredGasCost(gas, maxFeePerGas *uint256.Int) (*uint256.Int, error) {
	transferGas := c.TransferGas
	if transferGas == nil {
		transferGas = new(uint256.Int)
	}
	total, err := checkedAdd(gas, transferGas)
	if err != nil {
		return nil, fmt.Errorf("gas + transfer gas: %w", err)
	}
	cost, err := checkedMul(total, maxFeePerGas)
	if err != nil {
		return nil, fmt.Errorf("gas cost: %w", err)
	}
	return cost, nil
}

// ConvertGasCost prices a native quantity of this chain in the local asset.
func (c Chain) ConvertGasCost(quantity *uint256.Int, foreign, local Price) (*uint256.Int, error) {
	return Convert(quantity, foreign, local, c.FeeRate)
}
