// Package model contains the GORM persistence models. They mirror the
// database tables and are mapped to and from pure domain entities by the
// postgres repositories.
package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Username  string `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID        string  `gorm:"type:uuid;primaryKey"`
	Name      string  `gorm:"type:varchar(100);not null"`
	Price     float64 `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// PurchaseModel mirrors the 'purchases' table. Seq is an autoincrementing
// column used to return a user's purchases in creation order.
type PurchaseModel struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	Seq          int64   `gorm:"autoIncrement;uniqueIndex"`
	UserID       string  `gorm:"type:uuid;not null;index"`
	ProductID    string  `gorm:"type:uuid;not null"`
	Quantity     int     `gorm:"not null"`
	TotalPrice   float64 `gorm:"not null"`
	PurchaseDate time.Time
	LastUpdated  time.Time
	Status       string `gorm:"type:varchar(16);not null"`
}

// TableName explicitly sets the table name for GORM.
func (PurchaseModel) TableName() string {
	return "purchases"
}
