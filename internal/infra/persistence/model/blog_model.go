package model

import (
	"time"

	"github.com/google/uuid"
)

// BlogModel mirrors the 'blogs' table. CreatorID references users.id (UUID).
type BlogModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title       string    `gorm:"type:varchar(200);not null;index"`
	Content     string    `gorm:"type:text;not null"`
	Summary     string    `gorm:"type:varchar(500)"`
	IsPublished bool      `gorm:"not null;default:false;index"`
	CreatorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Creator *UserModel `gorm:"foreignKey:CreatorID"`
}

// TableName explicitly sets the table name for GORM.
func (BlogModel) TableName() string {
	return "blogs"
}
