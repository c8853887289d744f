package web

import (
	"net/http"
	"strings"
	"time"

	"wedding-admin/config"
	"wedding-admin/db"
	"wedding-admin/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type RSVPGuestData struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	InvitationCode string `json:"invitationCode"`
	IsAttending    bool   `json:"isAttending"`
	NumberOfGuests int    `json:"numberOfGuests"`
	EventType      string `json:"eventType"`
	Message        string `json:"message"`
}

type RSVPWebhookRequest struct {
	WeddingSlug string        `json:"weddingSlug" binding:"required"`
	GuestData   RSVPGuestData `json:"guestData"`
	APIKey      string        `json:"apiKey"`
}

// RSVPWebhook receives attendance updates from the invitation site. Guest
// resolution is an ordered trust hierarchy: invitation code (verified
// against the wedding), then phone upsert, then name match-or-create (least
// safe - may create an uninvited guest record).
func RSVPWebhook(c *gin.Context) {
	corsOpen(c)
	req := RSVPWebhookRequest{}
	if err := c.ShouldBindWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if config.RSVP_WEBHOOK_SECRET == "" || req.APIKey != config.RSVP_WEBHOOK_SECRET {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	wedding, err := models.WeddingBySlug(req.WeddingSlug)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wedding not found"})
		return
	}

	data := req.GuestData
	data.Name = strings.TrimSpace(data.Name)
	if data.InvitationCode == "" && data.Phone == "" && data.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Guest identification required"})
		return
	}
	status := models.RSVPDeclined
	if data.IsAttending {
		status = models.RSVPConfirmed
	}
	numberOfGuests := data.NumberOfGuests
	if numberOfGuests < 1 {
		numberOfGuests = 1
	}
	now := time.Now()

	if data.InvitationCode != "" {
		guest, err := models.GuestByInvitationCode(data.InvitationCode)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid invitation code"})
			return
		}
		if guest.WeddingID != wedding.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Invitation code not valid for this wedding"})
			return
		}
		if data.Email != "" {
			guest.Email = &data.Email
		}
		guest.RSVPStatus = status
		guest.NumberOfGuests = numberOfGuests
		if data.EventType != "" {
			guest.EventType = models.EventType(data.EventType)
		}
		if data.Message != "" {
			guest.Notes = data.Message
		}
		guest.RSVPAt = &now
		if err := db.Instance.Save(&guest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "guest": guest})
		return
	}

	guest := models.Guest{}
	if data.Phone != "" {
		err = db.Instance.First(&guest, "wedding_id = ? AND phone = ?", wedding.ID, data.Phone).Error
	} else {
		err = db.Instance.First(&guest, "wedding_id = ? AND name = ?", wedding.ID, data.Name).Error
	}
	if err != nil {
		// Unknown guest: create the record (uninvited, no invitation code)
		guest = models.Guest{
			WeddingID: wedding.ID,
			Name:      data.Name,
		}
	}
	guest.Name = data.Name
	if data.Email != "" {
		guest.Email = &data.Email
	}
	if data.Phone != "" {
		guest.Phone = &data.Phone
	}
	guest.RSVPStatus = status
	guest.NumberOfGuests = numberOfGuests
	if data.EventType != "" {
		guest.EventType = models.EventType(data.EventType)
	}
	if data.Message != "" {
		guest.Notes = data.Message
	}
	guest.RSVPAt = &now
	if err := db.Instance.Save(&guest).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "guest": guest})
}
