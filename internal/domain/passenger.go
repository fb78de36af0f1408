package domain

import "time"

// Passenger has no uniqueness constraint: two passengers may share a
// name, which is how real manifests work.
type Passenger struct {
	ID          int64      `json:"id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (p *Passenger) FullName() string {
	return p.FirstName + " " + p.LastName
}
