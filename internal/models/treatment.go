package models

import "github.com/jackc/pgx/v5/pgtype"

// Treatment records a medication given to an animal. MedicationName is free
// text, not a reference to the medications table.
type Treatment struct {
	ID                 int64       `json:"id"`
	AnimalID           int64       `json:"animal_id"`
	Reason             *string     `json:"reason"`
	MedicationName     *string     `json:"medication_name"`
	StartDate          pgtype.Date `json:"start_date"`
	MilkWithdrawalDays *int32      `json:"milk_withdrawal_days"`
}
