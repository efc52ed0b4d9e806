package domain

import (
	"time"
)

// Tenant holds the occupant record for an apartment. Dob is kept as a
// plain YYYY-MM-DD string; it is stored, never computed on.
type Tenant struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string     `gorm:"not null;column:first_name" json:"firstName"`
	LastName    string     `gorm:"not null;column:last_name" json:"lastName"`
	Dob         string     `gorm:"not null;column:dob" json:"dob"`
	SSN         string     `gorm:"not null;column:ssn" json:"ssn"`
	IsPrimary   bool       `gorm:"not null;column:is_primary" json:"isPrimary"`
	ApartmentID int64      `gorm:"not null;column:apartment_id;index" json:"apartmentId"`
	Apartment   *Apartment `gorm:"foreignKey:ApartmentID;references:ID" json:"apartment,omitempty"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (Tenant) TableName() string { return "tenant" }
