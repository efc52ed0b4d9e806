package domain

import (
	"time"
)

type Property struct {
	ID                int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	PropertyManagerID int64            `gorm:"not null;column:property_manager_id;index" json:"propertyManagerId"`
	PropertyManager   *PropertyManager `gorm:"foreignKey:PropertyManagerID;references:ID" json:"propertyManager,omitempty"`
	Address           string           `gorm:"not null;column:address" json:"address"`
	Name              string           `gorm:"not null;column:name" json:"name"`
	CreatedAt         time.Time        `gorm:"not null;autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time        `gorm:"not null;autoUpdateTime" json:"updatedAt"`
}

func (Property) TableName() string { return "property" }
