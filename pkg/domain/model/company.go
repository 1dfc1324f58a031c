package model

import (
	"time"

	"github.com/google/uuid"
)

// CompanyID is a UUID-based identifier for Company
type CompanyID string

// NewCompanyID generates a new UUID v4 CompanyID
func NewCompanyID() CompanyID {
	return CompanyID(uuid.New().String())
}

// String returns the string representation of the company ID
func (id CompanyID) String() string {
	return string(id)
}

// Company is the tenant entity all business records are scoped to.
// It is created exactly once, at first contact, and its name is the
// literal first message text from the founding sender.
type Company struct {
	ID        CompanyID
	Name      string
	CreatedAt time.Time
}
