package models

// Animal belongs to a producer. MotherID and FatherID point at other animals;
// the pedigree is stored as given and never checked for cycles.
type Animal struct {
	ID          int64   `json:"id"`
	ProducerID  int64   `json:"producer_id"`
	NameOrID    string  `json:"name_or_id"`
	Breed       *string `json:"breed"`
	Sex         *string `json:"sex"`
	InLactation bool    `json:"in_lactation"`
	IsCovered   bool    `json:"is_covered"`
	MotherID    *int64  `json:"mother_id"`
	FatherID    *int64  `json:"father_id"`
}
