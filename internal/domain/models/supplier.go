package models

import "time"

// Supplier is a registered provider of feed inputs, vaccines or services.
type Supplier struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	ContactName string    `bson:"contact_name,omitempty" json:"contact_name,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	CNPJ        string    `bson:"cnpj,omitempty" json:"cnpj,omitempty"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Validate checks supplier invariants.
func (s Supplier) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	return nil
}
