package store

import "fmt"

func AutoMigrate(db *DB) error {
	if err := db.AutoMigrate(
		&Chain{},
		&Paymaster{},
		&CollectedFee{},
		&AcceptedAsset{},
		&Reservation{},
		&TransferInstruction{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
