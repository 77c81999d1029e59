package company

import "time"

type Company struct {
	ID        string
	Name      string
	TaxID     *string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
