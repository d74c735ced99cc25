package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides the common columns of every plan record. IDs are strings
// because clients supply identities for the records they create.
type BaseModel struct {
	ID        string    `json:"id" gorm:"type:varchar(64);primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate sets the ID if the caller did not supply one
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	return nil
}
