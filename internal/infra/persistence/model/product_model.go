package model

import (
	"storefront/internal/domain/entity"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID            int64   `gorm:"primaryKey;autoIncrement"`
	Name          string  `gorm:"type:varchar(255);not null"`
	Price         float64 `gorm:"not null"`
	StockQuantity int     `gorm:"not null;default:0"`
	CategoryID    int64   `gorm:"not null"`
	Image         string  `gorm:"type:varchar(255)"`

	Reviews []ReviewModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts the model to a domain entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:            m.ID,
		Name:          m.Name,
		Price:         m.Price,
		StockQuantity: m.StockQuantity,
		CategoryID:    m.CategoryID,
		Image:         m.Image,
	}
}

// ProductModelFromEntity converts a domain entity to the model.
func ProductModelFromEntity(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:            product.ID,
		Name:          product.Name,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		CategoryID:    product.CategoryID,
		Image:         product.Image,
	}
}
