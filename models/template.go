package models

// InvitationTemplate is the per-wedding text admins copy to the clipboard
// or paste into a chat manually. One per wedding.
type InvitationTemplate struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	WeddingID uint64 `gorm:"index:uniq_invitation_template_wedding,unique"`
	Template  string `gorm:"type:text"`
}

// MessageTemplate is the per-wedding WhatsApp message sent through the
// gateway, optionally with an image attachment. One per wedding.
type MessageTemplate struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UpdatedAt int64
	WeddingID uint64 `gorm:"index:uniq_message_template_wedding,unique"`
	Message   string `gorm:"type:text"`
	ImageURL  string `gorm:"type:varchar(500)"`
	IsActive  bool   `gorm:"default:true"`
}
