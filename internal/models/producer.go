package models

type Producer struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Property *string `json:"property"`
	Phone    *string `json:"phone"`
}
