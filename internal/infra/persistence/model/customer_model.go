// Package model defines the GORM models mirroring the database schema.
package model

import (
	"storefront/internal/domain/entity"
)

// CustomerModel mirrors the 'customers' table. IDs are serial integers
// generated by PostgreSQL.
type CustomerModel struct {
	ID             int64  `gorm:"primaryKey;autoIncrement"`
	Name           string `gorm:"type:varchar(100);not null"`
	Email          string `gorm:"type:varchar(255);unique;not null"`
	Phone          string `gorm:"type:varchar(32)"`
	Address        string `gorm:"type:text"`
	HashedPassword string `gorm:"type:varchar(255);not null"`
	IsAdmin        bool   `gorm:"not null;default:false"`
	IsActive       bool   `gorm:"not null;default:true"`
	IsSuperuser    bool   `gorm:"not null;default:false"`
	IsVerified     bool   `gorm:"not null;default:false"`

	Reviews []ReviewModel `gorm:"foreignKey:CustomerID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// ToEntity converts the model to a domain entity.
func (m *CustomerModel) ToEntity() *entity.Customer {
	return &entity.Customer{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Address:        m.Address,
		HashedPassword: m.HashedPassword,
		IsAdmin:        m.IsAdmin,
		IsActive:       m.IsActive,
		IsSuperuser:    m.IsSuperuser,
		IsVerified:     m.IsVerified,
	}
}

// CustomerModelFromEntity converts a domain entity to the model.
func CustomerModelFromEntity(customer *entity.Customer) *CustomerModel {
	return &CustomerModel{
		ID:             customer.ID,
		Name:           customer.Name,
		Email:          customer.Email,
		Phone:          customer.Phone,
		Address:        customer.Address,
		HashedPassword: customer.HashedPassword,
		IsAdmin:        customer.IsAdmin,
		IsActive:       customer.IsActive,
		IsSuperuser:    customer.IsSuperuser,
		IsVerified:     customer.IsVerified,
	}
}
