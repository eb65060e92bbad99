package models

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type Medication struct {
	ID             int64               `json:"id"`
	Name           string              `json:"name"`
	DosagePerKg    decimal.NullDecimal `json:"dosage_per_kg"`
	WithdrawalDays *int32              `json:"withdrawal_days"`
	Price          decimal.NullDecimal `json:"price"`
	PurchaseDate   pgtype.Date         `json:"purchase_date"`
	ExpirationDate pgtype.Date         `json:"expiration_date"`
}
