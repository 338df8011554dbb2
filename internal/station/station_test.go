package station_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/0xPexy/sentra-gas-station/internal/signer"
	"github.com/0xPexy/sentra-gas-station/internal/station"
	"github.com/0xPexy/sentra-gas-station/internal/store/memstore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

const (
	owner   = "0x00000000000000000000000000000000000000aa"
	user    = "0x00000000000000000000000000000000000000bb"
	rootKey = "0x4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"
	chainID = uint64(11155111)
)

type recorder struct{ events []station.Event }

func (r *recorder) Publish(ev station.Event) { r.events = append(r.events, ev) }

type failingSigner struct{ station.Signer }

func (failingSigner) Sign(context.Context, common.Hash, string) ([]byte, error) {
	return nil, errors.New("hsm offline")
}

type fixture struct {
	st     *station.Station
	store  *memstore.Store
	events *recorder
	reg    *prometheus.Registry
}

func newFixture(t *testing.T, sig station.Signer) *fixture {
	t.Helper()
	if sig == nil {
		local, err := signer.NewLocal(rootKey)
		require.NoError(t, err)
		sig = local
	}
	f := &fixture{store: memstore.New(), events: &recorder{}, reg: prometheus.NewRegistry()}
	f.st = station.New(station.Options{
		Store:      f.store,
		Signer:     sig,
		Publisher:  f.events,
		Owner:      owner,
		Registerer: f.reg,
		Now:        func() time.Time { return time.Unix(1_700_000_000, 0) },
	})
	return f
}

func (f *fixture) seed(t *testing.T, balances map[string]uint64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.st.AddChain(ctx, owner, station.ChainParams{
		ChainID:       chainID,
		OracleAssetID: common.HexToHash("0x01"),
		TransferGas:   uint256.NewInt(21_000),
		FeeRate:       station.UnitFeeRate(),
	}))
	for token, balance := range balances {
		require.NoError(t, f.st.AddPaymaster(ctx, owner, chainID, token, 0, uint256.NewInt(balance)))
	}
}

func request() station.ReserveRequest {
	return station.ReserveRequest{
		GasRequest: station.GasRequest{
			ChainID:      chainID,
			Gas:          uint256.NewInt(100_000),
			MaxFeePerGas: uint256.NewInt(10),
			LocalPrice:   station.Price{Mantissa: 100, Exponent: -2},
			ForeignPrice: station.Price{Mantissa: 200, Exponent: -2},
		},
		Receiver: common.HexToAddress("0x00000000000000000000000000000000000000cc"),
	}
}

func balanceOf(t *testing.T, st *station.Station, token string) (uint64, uint32) {
	t.Helper()
	views, err := st.Paymasters(context.Background(), chainID)
	require.NoError(t, err)
	for _, v := range views {
		if v.TokenID == token {
			return v.MinimumAvailableBalance.Uint64(), v.Nonce
		}
	}
	t.Fatalf("paymaster %q not found", token)
	return 0, 0
}

func TestEstimateGasCost(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, map[string]uint64{"a": 1_000_000_000})

	charge, err := f.st.EstimateGasCost(context.Background(), request().GasRequest)
	require.NoError(t, err)
	// (100000 + 21000) * 10 native units at half the local price.
	require.Equal(t, uint64(605_000), charge.Uint64())

	bal, nonce := balanceOf(t, f.st, "a")
	require.Equal(t, uint64(1_000_000_000), bal)
	require.Equal(t, uint32(0), nonce)

	req := request().GasRequest
	req.ChainID = 1
	_, err = f.st.EstimateGasCost(context.Background(), req)
	require.ErrorIs(t, err, station.ErrChainNotFound)
}

func TestReserveRotatesPaymasters(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, map[string]uint64{"a": 10_000_000, "b": 10_000_000})
	ctx := context.Background()

	var tokens []string
	var nonces []uint32
	for i := 0; i < 3; i++ {
		r, err := f.st.Reserve(ctx, user, request())
		require.NoError(t, err)
		require.Equal(t, uint64(1_210_000), r.Amount.Uint64())
		require.Equal(t, uint64(605_000), r.Charge.Uint64())
		require.Equal(t, station.ReservationPending, r.Status)
		require.Equal(t, user, r.CreatedBy)
		tokens = append(tokens, r.TokenID)
		nonces = append(nonces, r.Nonce)
	}
	require.Equal(t, []string{"a", "b", "a"}, tokens)
	require.Equal(t, []uint32{0, 0, 1}, nonces)

	bal, nonce := balanceOf(t, f.st, "a")
	require.Equal(t, uint64(10_000_000-2*1_210_000), bal)
	require.Equal(t, uint32(2), nonce)

	chain, err := f.st.Chain(ctx, chainID)
	require.NoError(t, err)
	require.Equal(t, "b", chain.NextPaymaster)

	require.Len(t, f.events.events, 3)
	require.Equal(t, station.EventReservationCreated, f.events.events[0].Type)

	n, err := testutil.GatherAndCount(f.reg, "gas_station_reservations_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestReserveIsAtomic(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, map[string]uint64{"a": 100, "b": 10_000_000})
	ctx := context.Background()

	_, err := f.st.Reserve(ctx, user, request())
	require.ErrorIs(t, err, station.ErrInsufficientBalance)

	chain, err := f.st.Chain(ctx, chainID)
	require.NoError(t, err)
	require.Equal(t, "", chain.NextPaymaster)
	bal, nonce := balanceOf(t, f.st, "a")
	require.Equal(t, uint64(100), bal)
	require.Equal(t, uint32(0), nonce)

	reservations, err := f.st.Reservations(ctx, station.ReservationFilter{})
	require.NoError(t, err)
	require.Empty(t, reservations)
	require.Empty(t, f.events.events)

	n, err := testutil.GatherAndCount(f.reg, "gas_station_reservation_failures_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestReserveRejectsNegativePriceAndMissingChain(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, map[string]uint64{"a": 10_000_000})
	ctx := context.Background()

	req := request()
	req.LocalPrice.Mantissa = -1
	_, err := f.st.Reserve(ctx, user, req)
	require.ErrorIs(t, err, station.ErrNegativePrice)
	bal, nonce := balanceOf(t, f.st, "a")
	require.Equal(t, uint64(10_000_000), bal)
	require.Equal(t, uint32(0), nonce)

	req = request()
	req.ChainID = 5
	_, err = f.st.Reserve(ctx, user, req)
	require.ErrorIs(t, err, station.ErrChainNotFound)
}

func TestReserveWithoutPaymasters(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, nil)
	_, err := f.st.Reserve(context.Background(), user, request())
	require.ErrorIs(t, err, station.ErrPaymasterNotFound)
}

func TestReserveCollectsFeeAndWithdraw(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, map[string]uint64{"a": 10_000_000})
	ctx := context.Background()

	req := request()
	req.PaymentAsset = "usdc"
	_, err := f.st.Reserve(ctx, user, req)
	require.ErrorIs(t, err, station.ErrInvalidRequest)
	bal, nonce := balanceOf(t, f.st, "a")
	require.Equal(t, uint64(10_000_000), bal)
	require.Equal(t, uint32(0), nonce)
	fees, err := f.st.CollectedFees(ctx)
	require.NoError(t, err)
	require.Empty(t, fees)

	require.ErrorIs(t, f.st.AddAcceptedAssets(ctx, user, "usdc"), station.ErrUnauthorized)
	require.ErrorIs(t, f.st.AddAcceptedAssets(ctx, owner, ""), station.ErrInvalidRequest)
	require.NoError(t, f.st.AddAcceptedAssets(ctx, owner, "usdc"))

	_, err = f.st.Reserve(ctx, user, req)
	require.NoError(t, err)
	_, err = f.st.Reserve(ctx, user, req)
	require.NoError(t, err)

	fees, err = f.st.CollectedFees(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1_210_000), fees["usdc"].Uint64())

	_, err = f.st.WithdrawCollectedFees(ctx, user, "usdc", nil, "")
	require.ErrorIs(t, err, station.ErrUnauthorized)

	_, err = f.st.WithdrawCollectedFees(ctx, owner, "usdc", uint256.NewInt(2_000_000), "")
	require.ErrorIs(t, err, station.ErrInsufficientFees)
	fees, err = f.st.CollectedFees(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1_210_000), fees["usdc"].Uint64())

	part, err := f.st.WithdrawCollectedFees(ctx, owner, "usdc", uint256.NewInt(210_000), user)
	require.NoError(t, err)
	require.Equal(t, user, part.Receiver)
	require.NotEmpty(t, part.ID)

	rest, err := f.st.WithdrawCollectedFees(ctx, owner, "usdc", nil, "")
	require.NoError(t, err)
	require.Equal(t, uint64(1_000_000), rest.Amount.Uint64())
	require.Equal(t, owner, rest.Receiver)

	fees, err = f.st.CollectedFees(ctx)
	require.NoError(t, err)
	require.True(t, fees["usdc"].IsZero())
	require.Len(t, f.store.Transfers(), 2)

	_, err = f.st.WithdrawCollectedFees(ctx, owner, "dai", nil, "")
	require.ErrorIs(t, err, station.ErrInsufficientFees)

	// Fees collected before the asset was dropped stay withdrawable.
	_, err = f.st.Reserve(ctx, user, req)
	require.NoError(t, err)
	require.NoError(t, f.st.RemoveAcceptedAssets(ctx, owner, "usdc"))
	_, err = f.st.Reserve(ctx, user, req)
	require.ErrorIs(t, err, station.ErrInvalidRequest)
	tr, err := f.st.WithdrawCollectedFees(ctx, owner, "usdc", nil, "")
	require.NoError(t, err)
	require.Equal(t, uint64(605_000), tr.Amount.Uint64())
}

func TestAdminOperationsRequireOwner(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	params := station.ChainParams{ChainID: 1, TransferGas: uint256.NewInt(1), FeeRate: station.UnitFeeRate()}

	require.ErrorIs(t, f.st.AddChain(ctx, user, params), station.ErrUnauthorized)
	chains, err := f.st.Chains(ctx)
	require.NoError(t, err)
	require.Empty(t, chains)

	require.NoError(t, f.st.AddChain(ctx, owner, params))
	require.ErrorIs(t, f.st.AddChain(ctx, owner, params), station.ErrChainExists)
	require.ErrorIs(t, f.st.AddPaymaster(ctx, user, 1, "a", 0, uint256.NewInt(1)), station.ErrUnauthorized)
	require.ErrorIs(t, f.st.SetTransferGas(ctx, user, 1, uint256.NewInt(2)), station.ErrUnauthorized)
	require.ErrorIs(t, f.st.RemoveChain(ctx, user, 1), station.ErrUnauthorized)

	chain, err := f.st.Chain(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(1), chain.TransferGas.Uint64())
}

func TestChainAndPaymasterManagement(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, map[string]uint64{"a": 100})
	ctx := context.Background()

	require.NoError(t, f.st.SetTransferGas(ctx, owner, chainID, uint256.NewInt(30_000)))
	rate, err := station.NewFeeRate(uint256.NewInt(105), uint256.NewInt(100))
	require.NoError(t, err)
	require.NoError(t, f.st.SetFeeRate(ctx, owner, chainID, rate))
	require.ErrorIs(t, f.st.SetFeeRate(ctx, owner, chainID, station.FeeRate{Numerator: uint256.NewInt(1), Denominator: uint256.NewInt(0)}), station.ErrInvalidFeeRate)
	require.NoError(t, f.st.SetOracleAssetID(ctx, owner, chainID, common.HexToHash("0x02")))

	chain, err := f.st.Chain(ctx, chainID)
	require.NoError(t, err)
	require.Equal(t, uint64(30_000), chain.TransferGas.Uint64())
	require.Equal(t, "105/100", chain.FeeRate.String())
	require.Equal(t, common.HexToHash("0x02"), chain.OracleAssetID)

	require.ErrorIs(t, f.st.AddPaymaster(ctx, owner, chainID, "a", 0, uint256.NewInt(1)), station.ErrPaymasterExists)
	require.ErrorIs(t, f.st.AddPaymaster(ctx, owner, 99, "z", 0, uint256.NewInt(1)), station.ErrChainNotFound)

	require.NoError(t, f.st.IncreasePaymasterBalance(ctx, owner, chainID, "a", uint256.NewInt(50)))
	bal, _ := balanceOf(t, f.st, "a")
	require.Equal(t, uint64(150), bal)

	require.NoError(t, f.st.SetPaymasterBalance(ctx, owner, chainID, "a", uint256.NewInt(7)))
	require.NoError(t, f.st.SetPaymasterNonce(ctx, owner, chainID, "a", 42))
	bal, nonce := balanceOf(t, f.st, "a")
	require.Equal(t, uint64(7), bal)
	require.Equal(t, uint32(42), nonce)

	require.ErrorIs(t, f.st.SetPaymasterNonce(ctx, owner, chainID, "missing", 1), station.ErrPaymasterNotFound)

	require.NoError(t, f.st.RemovePaymaster(ctx, owner, chainID, "a"))
	views, err := f.st.Paymasters(ctx, chainID)
	require.NoError(t, err)
	require.Empty(t, views)

	require.NoError(t, f.st.RemoveChain(ctx, owner, chainID))
	require.ErrorIs(t, f.st.RemoveChain(ctx, owner, chainID), station.ErrChainNotFound)
	_, err = f.st.Paymasters(ctx, chainID)
	require.ErrorIs(t, err, station.ErrChainNotFound)
}

func TestUpdateChainIsAtomic(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, nil)
	ctx := context.Background()

	oracle := common.HexToHash("0x09")
	err := f.st.UpdateChain(ctx, owner, chainID, station.ChainUpdate{
		OracleAssetID: &oracle,
		TransferGas:   uint256.NewInt(99_999),
		FeeRate:       &station.FeeRate{Numerator: uint256.NewInt(1), Denominator: uint256.NewInt(0)},
	})
	require.ErrorIs(t, err, station.ErrInvalidFeeRate)

	chain, err := f.st.Chain(ctx, chainID)
	require.NoError(t, err)
	require.Equal(t, uint64(21_000), chain.TransferGas.Uint64())
	require.Equal(t, common.HexToHash("0x01"), chain.OracleAssetID)
	require.Equal(t, "1/1", chain.FeeRate.String())

	require.ErrorIs(t, f.st.UpdateChain(ctx, user, chainID, station.ChainUpdate{TransferGas: uint256.NewInt(1)}), station.ErrUnauthorized)
	require.ErrorIs(t, f.st.UpdateChain(ctx, owner, 99, station.ChainUpdate{}), station.ErrChainNotFound)

	require.NoError(t, f.st.UpdateChain(ctx, owner, chainID, station.ChainUpdate{
		OracleAssetID: &oracle,
		TransferGas:   uint256.NewInt(30_000),
		FeeRate:       &station.FeeRate{Numerator: uint256.NewInt(11), Denominator: uint256.NewInt(10)},
	}))
	chain, err = f.st.Chain(ctx, chainID)
	require.NoError(t, err)
	require.Equal(t, uint64(30_000), chain.TransferGas.Uint64())
	require.Equal(t, oracle, chain.OracleAssetID)
	require.Equal(t, "11/10", chain.FeeRate.String())
}

func TestUpdatePaymasterIsAtomic(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, map[string]uint64{"a": 100})
	ctx := context.Background()

	full := new(uint256.Int).SetAllOne()
	nonce := uint32(7)
	err := f.st.UpdatePaymaster(ctx, owner, chainID, "a", station.PaymasterUpdate{
		Balance:    full,
		IncreaseBy: uint256.NewInt(1),
		Nonce:      &nonce,
	})
	require.ErrorIs(t, err, station.ErrArithmeticOverflow)
	bal, got := balanceOf(t, f.st, "a")
	require.Equal(t, uint64(100), bal)
	require.Equal(t, uint32(0), got)

	require.NoError(t, f.st.UpdatePaymaster(ctx, owner, chainID, "a", station.PaymasterUpdate{
		Balance:    uint256.NewInt(10),
		IncreaseBy: uint256.NewInt(5),
		Nonce:      &nonce,
	}))
	bal, got = balanceOf(t, f.st, "a")
	require.Equal(t, uint64(15), bal)
	require.Equal(t, uint32(7), got)

	require.ErrorIs(t, f.st.UpdatePaymaster(ctx, owner, chainID, "missing", station.PaymasterUpdate{}), station.ErrPaymasterNotFound)
}

func TestRotationSurvivesRemovedCursor(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, map[string]uint64{"a": 10_000_000, "b": 10_000_000, "c": 10_000_000})
	ctx := context.Background()

	r, err := f.st.Reserve(ctx, user, request())
	require.NoError(t, err)
	require.Equal(t, "a", r.TokenID)

	require.NoError(t, f.st.RemovePaymaster(ctx, owner, chainID, "b"))
	r, err = f.st.Reserve(ctx, user, request())
	require.NoError(t, err)
	require.Equal(t, "c", r.TokenID)

	r, err = f.st.Reserve(ctx, user, request())
	require.NoError(t, err)
	require.Equal(t, "a", r.TokenID)
}

func TestSignReservation(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, map[string]uint64{"a": 10_000_000})
	ctx := context.Background()

	r, err := f.st.Reserve(ctx, user, request())
	require.NoError(t, err)

	signed, err := f.st.SignReservation(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, station.ReservationSigned, signed.Status)
	require.NotEmpty(t, signed.SignedTx)

	var tx types.Transaction
	require.NoError(t, tx.UnmarshalBinary(signed.SignedTx))
	from, err := types.Sender(types.LatestSignerForChainID(new(big.Int).SetUint64(chainID)), &tx)
	require.NoError(t, err)

	views, err := f.st.Paymasters(ctx, chainID)
	require.NoError(t, err)
	require.Equal(t, views[0].ForeignAddress, from)
	require.Equal(t, uint64(0), tx.Nonce())
	require.Equal(t, uint64(21_000), tx.Gas())
	require.Equal(t, int64(1_000_000), tx.Value().Int64())
	require.Equal(t, request().Receiver, *tx.To())

	again, err := f.st.SignReservation(ctx, r.ID)
	require.NoError(t, err)
	require.Equal(t, signed.SignedTx, again.SignedTx)

	_, err = f.st.SignReservation(ctx, 999)
	require.ErrorIs(t, err, station.ErrReservationNotFound)
}

func TestSignReservationFailureKeepsReservation(t *testing.T) {
	local, err := signer.NewLocal(rootKey)
	require.NoError(t, err)
	f := newFixture(t, failingSigner{Signer: local})
	f.seed(t, map[string]uint64{"a": 10_000_000})
	ctx := context.Background()

	r, err := f.st.Reserve(ctx, user, request())
	require.NoError(t, err)

	got, err := f.st.SignReservation(ctx, r.ID)
	require.Error(t, err)
	require.Equal(t, station.ReservationSignFailed, got.Status)

	bal, nonce := balanceOf(t, f.st, "a")
	require.Equal(t, uint64(10_000_000-1_210_000), bal)
	require.Equal(t, uint32(1), nonce)
}

func TestReservationsFilterByCaller(t *testing.T) {
	f := newFixture(t, nil)
	f.seed(t, map[string]uint64{"a": 100_000_000})
	ctx := context.Background()

	for _, caller := range []string{user, owner, user} {
		_, err := f.st.Reserve(ctx, caller, request())
		require.NoError(t, err)
	}
	mine, err := f.st.Reservations(ctx, station.ReservationFilter{CreatedBy: "0x00000000000000000000000000000000000000BB"})
	require.NoError(t, err)
	require.Len(t, mine, 2)

	page, err := f.st.Reservations(ctx, station.ReservationFilter{Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, uint64(2), page[0].ID)

	one, err := f.st.Reservation(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, user, one.CreatedBy)
}
