package admin

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
	"github.com/holiman/uint256"
)

// ParseAmount reads a non-negative decimal or 0x-prefixed hex integer.
func ParseAmount(field, s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%s is required", field)
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := uint256.FromHex(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %v", field, err)
		}
		return v, nil
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %v", field, err)
	}
	return v, nil
}

func parseFeeRate(dto *FeeRateDTO) (station.FeeRate, error) {
	if dto == nil {
		return station.UnitFeeRate(), nil
	}
	num, err := ParseAmount("feeRate.numerator", dto.Numerator)
	if err != nil {
		return station.FeeRate{}, err
	}
	den, err := ParseAmount("feeRate.denominator", dto.Denominator)
	if err != nil {
		return station.FeeRate{}, err
	}
	return station.FeeRate{Numerator: num, Denominator: den}, nil
}

func parseOracleAssetID(s string) (common.Hash, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return common.Hash{}, nil
	}
	b, err := hexutil.Decode(s)
	if err != nil || len(b) > common.HashLength {
		return common.Hash{}, fmt.Errorf("invalid oracleAssetId %q", s)
	}
	return common.BytesToHash(b), nil
}

func chainIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("chainId"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid chainId")
		return 0, false
	}
	return id, true
}
