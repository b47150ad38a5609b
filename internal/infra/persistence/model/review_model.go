package model

import (
	"time"

	"storefront/internal/domain/entity"
)

// ReviewModel mirrors the 'reviews' table.
type ReviewModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	ProductID  int64     `gorm:"not null;index"`
	CustomerID int64     `gorm:"not null;index"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	ReviewDate time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToEntity converts the model to a domain entity.
func (m *ReviewModel) ToEntity() *entity.Review {
	return &entity.Review{
		ID:         m.ID,
		ProductID:  m.ProductID,
		CustomerID: m.CustomerID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		ReviewDate: m.ReviewDate,
	}
}

// ReviewModelFromEntity converts a domain entity to the model.
func ReviewModelFromEntity(review *entity.Review) *ReviewModel {
	return &ReviewModel{
		ID:         review.ID,
		ProductID:  review.ProductID,
		CustomerID: review.CustomerID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		ReviewDate: review.ReviewDate,
	}
}
