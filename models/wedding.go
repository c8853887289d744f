package models

import (
	"time"

	"wedding-admin/db"
)

type Wedding struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Name        string `gorm:"type:varchar(150)"`
	Slug        string `gorm:"type:varchar(100);index:uniq_slug,unique"`
	GroomName   string `gorm:"type:varchar(100)"`
	BrideName   string `gorm:"type:varchar(100)"`
	WeddingDate time.Time
	Venue       string `gorm:"type:varchar(255)"`
	Description string `gorm:"type:text"`
	AdminID     uint64
	Admin       User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	// Privacy toggle: invitation URL parameters are packed into a single
	// base64 "data" parameter. Reversible by anyone with the URL - this is
	// obfuscation, not access control.
	EncodeInvitationParams bool

	InvitationTemplate *InvitationTemplate `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	MessageTemplate    *MessageTemplate    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func WeddingBySlug(slug string) (w Wedding, err error) {
	err = db.Instance.First(&w, "slug = ?", slug).Error
	return
}
