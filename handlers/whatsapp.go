package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"wedding-admin/bulk"
	"wedding-admin/config"
	"wedding-admin/db"
	"wedding-admin/invitation"
	"wedding-admin/models"
	"wedding-admin/waha"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

// MessageGateway is the outbound WhatsApp surface the send handlers need.
// Satisfied by *waha.Client.
type MessageGateway interface {
	SendMessage(chatID, text string) error
	SendImageMessage(chatID, imageURL, caption string) error
}

// Gateway is the shared gateway client, set once at startup.
var Gateway MessageGateway

var (
	errForbidden = errors.New("forbidden")
	errNoPhone   = errors.New("guest has no phone number")
)

type WhatsAppSendRequest struct {
	GuestID uint64 `json:"guest_id" binding:"required"`
	Force   bool   `json:"force"`
}

type WhatsAppSendImageRequest struct {
	GuestID  uint64 `json:"guest_id" binding:"required"`
	ImageURL string `json:"image_url" binding:"required"`
	Caption  string `json:"caption"`
}

type WhatsAppSendBulkRequest struct {
	GuestIDs []uint64 `json:"guest_ids" binding:"required"`
}

// sendInvitation is the single-guest unit of work used by both the
// single-send endpoint and the bulk sequencer. Unless forced, a guest whose
// invitation already went out within the cool-down window is skipped - the
// idempotency rule for overlapping bulk jobs on the same guest.
func sendInvitation(guestID uint64, user *models.User, force bool) error {
	guest := models.Guest{}
	if err := db.Instance.Preload("Wedding").Preload("Wedding.MessageTemplate").First(&guest, guestID).Error; err != nil {
		return err
	}
	if !models.CanAccessWedding(user, &guest.Wedding) {
		return errForbidden
	}
	if guest.Phone == nil || *guest.Phone == "" {
		return errNoPhone
	}
	if !force && guest.InvitationSent && guest.InvitationSentAt != nil {
		cooldown := time.Duration(config.RESEND_COOLDOWN_SECONDS) * time.Second
		if time.Since(*guest.InvitationSentAt) < cooldown {
			return fmt.Errorf("invitation sent %s ago: %w", time.Since(*guest.InvitationSentAt).Round(time.Second), bulk.ErrSkip)
		}
	}
	chatID := waha.ChatID(*guest.Phone)
	template := ""
	imageURL := ""
	if mt := guest.Wedding.MessageTemplate; mt != nil && mt.IsActive {
		template = mt.Message
		imageURL = mt.ImageURL
	}
	text := invitation.RenderMessage(template, &guest, &guest.Wedding)
	var err error
	if imageURL != "" {
		// Image sends need WAHA Plus; fall back to text only
		if err = Gateway.SendImageMessage(chatID, imageURL, text); err != nil {
			err = Gateway.SendMessage(chatID, text)
		}
	} else {
		err = Gateway.SendMessage(chatID, text)
	}
	if err != nil {
		return err
	}
	return guest.MarkInvitationSent()
}

func sendErrorStatus(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, errForbidden):
		return http.StatusForbidden
	case errors.Is(err, errNoPhone):
		return http.StatusBadRequest
	case errors.Is(err, bulk.ErrSkip):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WhatsAppSend sends one guest's invitation through the gateway.
func WhatsAppSend(c *gin.Context, user *models.User) {
	r := WhatsAppSendRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := sendInvitation(r.GuestID, user, r.Force); err != nil {
		c.JSON(sendErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "invitation sent"})
}

// WhatsAppSendImage sends an explicit image to one guest, with the rendered
// invitation message as default caption.
func WhatsAppSendImage(c *gin.Context, user *models.User) {
	r := WhatsAppSendImageRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	guest := models.Guest{}
	if err := db.Instance.Preload("Wedding").Preload("Wedding.MessageTemplate").First(&guest, r.GuestID).Error; err != nil {
		abortWithError(c, err)
		return
	}
	if !models.CanAccessWedding(user, &guest.Wedding) {
		c.JSON(http.StatusForbidden, ForbiddenResponse)
		return
	}
	if guest.Phone == nil || *guest.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": errNoPhone.Error()})
		return
	}
	caption := r.Caption
	if caption == "" {
		template := ""
		if mt := guest.Wedding.MessageTemplate; mt != nil && mt.IsActive {
			template = mt.Message
		}
		caption = invitation.RenderMessage(template, &guest, &guest.Wedding)
	}
	if err := Gateway.SendImageMessage(waha.ChatID(*guest.Phone), r.ImageURL, caption); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := guest.MarkInvitationSent(); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "image invitation sent"})
}

// WhatsAppSendBulk runs the sequential bulk sender over the given guests.
// Sends are strictly ordered and paced; a failed guest never aborts the
// rest of the batch.
func WhatsAppSendBulk(c *gin.Context, user *models.User) {
	r := WhatsAppSendBulkRequest{}
	if err := c.ShouldBindWith(&r, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(r.GuestIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest_ids required"})
		return
	}
	sequencer := bulk.NewSequencer(
		time.Duration(config.BULK_SEND_DELAY_SECONDS)*time.Second,
		func(id uint64) error { return sendInvitation(id, user, false) },
		resolveGuestName,
	)
	result := sequencer.Run(r.GuestIDs)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": result,
		"summary": gin.H{
			"total":   len(r.GuestIDs),
			"sent":    len(result.Success),
			"skipped": len(result.Skipped),
			"failed":  len(result.Failed),
		},
	})
}

func resolveGuestName(guestID uint64) string {
	guest := models.Guest{}
	if err := db.Instance.Select("name").First(&guest, guestID).Error; err != nil {
		return "Unknown"
	}
	return guest.Name
}
