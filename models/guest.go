package models

import (
	"time"

	"wedding-admin/db"
	"wedding-admin/utils"
)

type RSVPStatus string

const (
	RSVPPending   RSVPStatus = "PENDING"
	RSVPConfirmed RSVPStatus = "CONFIRMED"
	RSVPDeclined  RSVPStatus = "DECLINED"
)

type EventType string

const (
	EventBlessingOnly      EventType = "blessing-only"
	EventBlessingReception EventType = "blessing-reception"
	EventReceptionOnly     EventType = "reception-only"
)

type Guest struct {
	ID                uint64 `gorm:"primaryKey"`
	CreatedAt         int64
	UpdatedAt         int64
	WeddingID         uint64  `gorm:"index:uniq_wedding_phone,unique"`
	Wedding           Wedding `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Name              string  `gorm:"type:varchar(150)"`
	Email             *string `gorm:"type:varchar(150)"`
	Phone             *string `gorm:"type:varchar(32);index:uniq_wedding_phone,unique"`
	NumberOfGuests    int     `gorm:"default:1"`
	MaxGuests         int     `gorm:"default:1"`
	IsOnlyPemberkatan bool
	Notes             string     `gorm:"type:text"`
	RSVPStatus        RSVPStatus `gorm:"type:varchar(20);default:'PENDING'"`
	EventType         EventType  `gorm:"type:varchar(30)"`
	RSVPAt            *time.Time
	InvitationSent    bool
	InvitationSentAt  *time.Time
	// 10-char bearer token for RSVP submission and short-link resolution.
	// Assigned at creation, immutable after. Nullable: legacy imports may
	// lack one until backfilled.
	InvitationCode *string `gorm:"type:varchar(10);index:uniq_invitation_code,unique"`
}

const (
	invitationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	invitationCodeLength   = 10
)

func GenerateInvitationCode() string {
	return utils.RandomCode(invitationCodeAlphabet, invitationCodeLength)
}

// GuestByInvitationCode resolves the code to its guest, wedding preloaded.
func GuestByInvitationCode(code string) (g Guest, err error) {
	err = db.Instance.Preload("Wedding").First(&g, "invitation_code = ?", code).Error
	return
}

func (g *Guest) MarkInvitationSent() error {
	now := time.Now()
	g.InvitationSent = true
	g.InvitationSentAt = &now
	return db.Instance.Model(g).Updates(map[string]interface{}{
		"invitation_sent":    true,
		"invitation_sent_at": now,
	}).Error
}

// BackfillInvitationCodes assigns codes to guests created without one.
// Returns the number of guests updated.
func BackfillInvitationCodes() (int, error) {
	var guests []Guest
	if err := db.Instance.Where("invitation_code IS NULL").Find(&guests).Error; err != nil {
		return 0, err
	}
	updated := 0
	for i := range guests {
		code := GenerateInvitationCode()
		if err := db.Instance.Model(&guests[i]).Update("invitation_code", code).Error; err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
