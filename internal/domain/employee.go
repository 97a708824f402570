package domain

import "time"

type Employee struct {
	ID                 int64     `json:"id"`
	FirstName          string    `json:"firstName"`
	LastName           string    `json:"lastName"`
	Position           string    `json:"position"`
	EmploymentFraction float64   `json:"employmentFraction"` // fraction of full time, in (0, 1]
	EmployerID         int64     `json:"employerID"`
	CreatedAt          time.Time `json:"createdAt"`
	Version            int32     `json:"-"`
}

func (e *Employee) DisplayName() string {
	return e.FirstName + " " + e.LastName
}
