package domain

import (
	"time"
)

type Apartment struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyID int64     `gorm:"not null;column:property_id;index" json:"propertyId"`
	Property   *Property `gorm:"foreignKey:PropertyID;references:ID" json:"property,omitempty"`
	UnitNumber string    `gorm:"not null;column:unit_number" json:"unitNumber"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (Apartment) TableName() string { return "apartment" }
