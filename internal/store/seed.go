package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// SeedFile lists chains, paymasters and accepted payment assets to create at
// startup.
type SeedFile struct {
	Chains         []SeedChain `json:"chains"`
	AcceptedAssets []string    `json:"acceptedAssets"`
}

type SeedChain struct {
	ChainID            uint64          `json:"chainId"`
	OracleAssetID      string          `json:"oracleAssetId"`
	TransferGas        string          `json:"transferGas"`
	FeeRateNumerator   string          `json:"feeRateNumerator"`
	FeeRateDenominator string          `json:"feeRateDenominator"`
	Paymasters         []SeedPaymaster `json:"paymasters"`
}

type SeedPaymaster struct {
	TokenID string `json:"tokenId"`
	Nonce   uint32 `json:"nonce"`
	Balance string `json:"balance"`
}

func LoadSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed SeedFile
	if err := json.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &seed, nil
}

// EnsureSeed creates whatever the seed names that does not exist yet.
// Existing chains and paymasters are left as they are.
func EnsureSeed(ctx context.Context, st *station.Station, owner string, seed *SeedFile, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	for _, c := range seed.Chains {
		params, err := c.params()
		if err != nil {
			return err
		}
		switch err := st.AddChain(ctx, owner, params); {
		case err == nil:
			log.Info("seeded chain", zap.Uint64("chainId", c.ChainID))
		case errors.Is(err, station.ErrChainExists):
		default:
			return fmt.Errorf("seed chain %d: %w", c.ChainID, err)
		}
		for _, pm := range c.Paymasters {
			balance, err := seedAmount(pm.Balance, "0")
			if err != nil {
				return fmt.Errorf("seed paymaster %q: %w", pm.TokenID, err)
			}
			switch err := st.AddPaymaster(ctx, owner, c.ChainID, pm.TokenID, pm.Nonce, balance); {
			case err == nil:
				log.Info("seeded paymaster", zap.Uint64("chainId", c.ChainID), zap.String("tokenId", pm.TokenID))
			case errors.Is(err, station.ErrPaymasterExists):
			default:
				return fmt.Errorf("seed paymaster %q on chain %d: %w", pm.TokenID, c.ChainID, err)
			}
		}
	}
	if len(seed.AcceptedAssets) > 0 {
		if err := st.AddAcceptedAssets(ctx, owner, seed.AcceptedAssets...); err != nil {
			return fmt.Errorf("seed accepted assets: %w", err)
		}
		log.Info("seeded accepted assets", zap.Strings("assets", seed.AcceptedAssets))
	}
	return nil
}

func (c SeedChain) params() (station.ChainParams, error) {
	gas, err := seedAmount(c.TransferGas, "21000")
	if err != nil {
		return station.ChainParams{}, fmt.Errorf("seed chain %d transferGas: %w", c.ChainID, err)
	}
	num, err := seedAmount(c.FeeRateNumerator, "1")
	if err != nil {
		return station.ChainParams{}, fmt.Errorf("seed chain %d fee rate: %w", c.ChainID, err)
	}
	den, err := seedAmount(c.FeeRateDenominator, "1")
	if err != nil {
		return station.ChainParams{}, fmt.Errorf("seed chain %d fee rate: %w", c.ChainID, err)
	}
	return station.ChainParams{
		ChainID:       c.ChainID,
		OracleAssetID: common.HexToHash(c.OracleAssetID),
		TransferGas:   gas,
		FeeRate:       station.FeeRate{Numerator: num, Denominator: den},
	}, nil
}

func seedAmount(s, def string) (*uint256.Int, error) {
	if s == "" {
		s = def
	}
	return uint256.FromDecimal(s)
}
