package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the sqlite backed station.Store. Every Update runs in one
// database transaction.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *DB) *Repository { return &Repository{db: db.DB} }

func (r *Repository) View(ctx context.Context, fn func(station.Tx) error) error {
	return fn(&repoTx{db: r.db.WithContext(ctx)})
}

func (r *Repository) Update(ctx context.Context, fn func(station.Tx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repoTx{db: tx})
	})
}

// Transfers lists recorded transfer instructions, newest first.
func (r *Repository) Transfers(ctx context.Context, limit int) ([]TransferInstruction, error) {
	var out []TransferInstruction
	q := r.db.WithContext(ctx).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&out).Error
	return out, err
}

type repoTx struct {
	db *gorm.DB
}

func (t *repoTx) Chain(chainID uint64) (*station.Chain, error) {
	var row Chain
	err := t.db.First(&row, "chain_id = ?", chainID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, station.ErrChainNotFound
		}
		return nil, err
	}
	return chainFromRow(row)
}

func (t *repoTx) Chains() ([]station.Chain, error) {
	var rows []Chain
	if err := t.db.Order("chain_id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]station.Chain, 0, len(rows))
	for _, row := range rows {
		c, err := chainFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

func (t *repoTx) PutChain(c *station.Chain) error {
	row := chainToRow(c)
	return t.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "chain_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"next_paymaster":       row.NextPaymaster,
			"transfer_gas":         row.TransferGas,
			"fee_rate_numerator":   row.FeeRateNumerator,
			"fee_rate_denominator": row.FeeRateDenominator,
			"oracle_asset_id":      row.OracleAssetID,
			"updated_at":           gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&row).Error
}

func (t *repoTx) DeleteChain(chainID uint64) error {
	if err := t.db.Where("chain_id = ?", chainID).Delete(&Paymaster{}).Error; err != nil {
		return err
	}
	return t.db.Where("chain_id = ?", chainID).Delete(&Chain{}).Error
}

func (t *repoTx) Paymaster(chainID uint64, tokenID string) (*station.Paymaster, error) {
	var row Paymaster
	err := t.db.Where("chain_id = ? AND token_id = ?", chainID, tokenID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, station.ErrPaymasterNotFound
		}
		return nil, err
	}
	return paymasterFromRow(row)
}

func (t *repoTx) Paymasters(chainID uint64) ([]station.Paymaster, error) {
	var rows []Paymaster
	if err := t.db.Where("chain_id = ?", chainID).Order("token_id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]station.Paymaster, 0, len(rows))
	for _, row := range rows {
		pm, err := paymasterFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *pm)
	}
	return out, nil
}

func (t *repoTx) PaymasterKeys(chainID uint64) station.KeySet {
	return paymasterKeys{db: t.db, chainID: chainID}
}

func (t *repoTx) PutPaymaster(chainID uint64, pm *station.Paymaster) error {
	row := Paymaster{
		ChainID:                 chainID,
		TokenID:                 pm.TokenID,
		Nonce:                   pm.Nonce,
		MinimumAvailableBalance: decOrZero(pm.MinimumAvailableBalance),
	}
	return t.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "chain_id"}, {Name: "token_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"nonce":                     row.Nonce,
			"minimum_available_balance": row.MinimumAvailableBalance,
			"updated_at":                gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&row).Error
}

func (t *repoTx) DeletePaymaster(chainID uint64, tokenID string) error {
	return t.db.Where("chain_id = ? AND token_id = ?", chainID, tokenID).Delete(&Paymaster{}).Error
}

func (t *repoTx) CollectedFee(asset string) (*uint256.Int, error) {
	var row CollectedFee
	err := t.db.First(&row, "asset_id = ?", asset).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parseDec("collected fee", row.Amount)
}

func (t *repoTx) CollectedFees() (map[string]*uint256.Int, error) {
	var rows []CollectedFee
	if err := t.db.Order("asset_id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]*uint256.Int, len(rows))
	for _, row := range rows {
		v, err := parseDec("collected fee", row.Amount)
		if err != nil {
			return nil, err
		}
		out[row.AssetID] = v
	}
	return out, nil
}

func (t *repoTx) PutCollectedFee(asset string, amount *uint256.Int) error {
	row := CollectedFee{AssetID: asset, Amount: decOrZero(amount)}
	return t.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "asset_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"amount":     row.Amount,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&row).Error
}

func (t *repoTx) AcceptedAssets() ([]string, error) {
	var out []string
	err := t.db.Model(&AcceptedAsset{}).Order("asset_id asc").Pluck("asset_id", &out).Error
	return out, err
}

func (t *repoTx) IsAcceptedAsset(asset string) (bool, error) {
	var n int64
	err := t.db.Model(&AcceptedAsset{}).Where("asset_id = ?", asset).Count(&n).Error
	return n > 0, err
}

func (t *repoTx) PutAcceptedAsset(asset string) error {
	return t.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&AcceptedAsset{AssetID: asset}).Error
}

func (t *repoTx) DeleteAcceptedAsset(asset string) error {
	return t.db.Where("asset_id = ?", asset).Delete(&AcceptedAsset{}).Error
}

func (t *repoTx) PutReservation(r *station.Reservation) error {
	row := reservationToRow(r)
	if row.ID == 0 {
		if err := t.db.Create(&row).Error; err != nil {
			return err
		}
		r.ID = row.ID
		return nil
	}
	res := t.db.Model(&Reservation{}).Where("id = ?", row.ID).Updates(map[string]any{
		"status":     row.Status,
		"signed_tx":  row.SignedTx,
		"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return station.ErrReservationNotFound
	}
	return nil
}

func (t *repoTx) Reservation(id uint64) (*station.Reservation, error) {
	var row Reservation
	err := t.db.First(&row, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, station.ErrReservationNotFound
		}
		return nil, err
	}
	return reservationFromRow(row)
}

func (t *repoTx) Reservations(filter station.ReservationFilter) ([]station.Reservation, error) {
	var rows []Reservation
	q := t.db.Order("id asc")
	if filter.CreatedBy != "" {
		q = q.Where("created_by = ?", strings.ToLower(filter.CreatedBy))
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]station.Reservation, 0, len(rows))
	for _, row := range rows {
		r, err := reservationFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}

func (t *repoTx) PutTransfer(tr *station.TransferInstruction) error {
	return t.db.Create(&TransferInstruction{
		ID:        tr.ID,
		Asset:     tr.Asset,
		Amount:    decOrZero(tr.Amount),
		Receiver:  tr.Receiver,
		CreatedAt: tr.CreatedAt,
	}).Error
}

// paymasterKeys resolves rotation lookups with the (chain_id, token_id)
// index. sqlite compares TEXT bytewise, which matches Go string ordering.
type paymasterKeys struct {
	db      *gorm.DB
	chainID uint64
}

func (k paymasterKeys) first(cond string, args ...any) (string, bool, error) {
	var keys []string
	q := k.db.Model(&Paymaster{}).Where("chain_id = ?", k.chainID)
	if cond != "" {
		q = q.Where(cond, args...)
	}
	if err := q.Order("token_id asc").Limit(1).Pluck("token_id", &keys).Error; err != nil {
		return "", false, err
	}
	if len(keys) == 0 {
		return "", false, nil
	}
	return keys[0], true, nil
}

func (k paymasterKeys) Ceiling(key string) (string, bool, error) {
	return k.first("token_id >= ?", key)
}

func (k paymasterKeys) Higher(key string) (string, bool, error) {
	return k.first("token_id > ?", key)
}

func (k paymasterKeys) Min() (string, bool, error) {
	return k.first("")
}

func chainToRow(c *station.Chain) Chain {
	return Chain{
		ChainID:            c.ChainID,
		NextPaymaster:      c.NextPaymaster,
		TransferGas:        decOrZero(c.TransferGas),
		FeeRateNumerator:   decOrZero(c.FeeRate.Numerator),
		FeeRateDenominator: decOrZero(c.FeeRate.Denominator),
		OracleAssetID:      c.OracleAssetID.Hex(),
	}
}

func chainFromRow(row Chain) (*station.Chain, error) {
	gas, err := parseDec("transfer gas", row.TransferGas)
	if err != nil {
		return nil, err
	}
	num, err := parseDec("fee rate numerator", row.FeeRateNumerator)
	if err != nil {
		return nil, err
	}
	den, err := parseDec("fee rate denominator", row.FeeRateDenominator)
	if err != nil {
		return nil, err
	}
	return &station.Chain{
		ChainID:       row.ChainID,
		NextPaymaster: row.NextPaymaster,
		TransferGas:   gas,
		FeeRate:       station.FeeRate{Numerator: num, Denominator: den},
		OracleAssetID: common.HexToHash(row.OracleAssetID),
	}, nil
}

func paymasterFromRow(row Paymaster) (*station.Paymaster, error) {
	balance, err := parseDec("paymaster balance", row.MinimumAvailableBalance)
	if err != nil {
		return nil, err
	}
	return &station.Paymaster{
		TokenID:                 row.TokenID,
		Nonce:                   row.Nonce,
		MinimumAvailableBalance: balance,
	}, nil
}

func reservationToRow(r *station.Reservation) Reservation {
	return Reservation{
		ID:           r.ID,
		ChainID:      r.ChainID,
		TokenID:      r.TokenID,
		Nonce:        r.Nonce,
		Gas:          decOrZero(r.Gas),
		MaxFeePerGas: decOrZero(r.MaxFeePerGas),
		Amount:       decOrZero(r.Amount),
		Charge:       decOrZero(r.Charge),
		PaymentAsset: r.PaymentAsset,
		Receiver:     station.NormalizeAddress(r.Receiver.Hex()),
		CreatedBy:    r.CreatedBy,
		Status:       string(r.Status),
		SignedTx:     r.SignedTx,
		CreatedAt:    r.CreatedAt,
	}
}

func reservationFromRow(row Reservation) (*station.Reservation, error) {
	out := &station.Reservation{
		ID:           row.ID,
		ChainID:      row.ChainID,
		TokenID:      row.TokenID,
		Nonce:        row.Nonce,
		PaymentAsset: row.PaymentAsset,
		Receiver:     common.HexToAddress(row.Receiver),
		CreatedBy:    row.CreatedBy,
		Status:       station.ReservationStatus(row.Status),
		SignedTx:     row.SignedTx,
		CreatedAt:    row.CreatedAt,
	}
	var err error
	if out.Gas, err = parseDec("gas", row.Gas); err != nil {
		return nil, err
	}
	if out.MaxFeePerGas, err = parseDec("max fee per gas", row.MaxFeePerGas); err != nil {
		return nil, err
	}
	if out.Amount, err = parseDec("amount", row.Amount); err != nil {
		return nil, err
	}
	if out.Charge, err = parseDec("charge", row.Charge); err != nil {
		return nil, err
	}
	return out, nil
}

func decOrZero(x *uint256.Int) string {
	if x == nil {
		return "0"
	}
	return x.Dec()
}

func parseDec(field, s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("store: decode %s %q: %w", field, s, err)
	}
	return v, nil
}
