package domain

import (
	"time"
)

type Payment struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	TenantID  int64     `gorm:"not null;column:tenant_id;index" json:"tenantId"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID;references:ID" json:"tenant,omitempty"`
	Amount    float64   `gorm:"not null;column:amount" json:"amount"`
	Date      time.Time `gorm:"not null;column:date" json:"date"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"`
}

func (Payment) TableName() string { return "payment" }
