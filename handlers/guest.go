package handlers

import (
	"net/http"
	"strings"

	"wedding-admin/db"
	"wedding-admin/invitation"
	"wedding-admin/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type GuestSaveRequest struct {
	ID                uint64 `form:"id"`
	WeddingID         uint64 `form:"wedding_id" binding:"required"`
	Name              string `form:"name" binding:"required"`
	Email             string `form:"email"`
	Phone             string `form:"phone"`
	NumberOfGuests    int    `form:"number_of_guests"`
	MaxGuests         int    `form:"max_guests"`
	IsOnlyPemberkatan bool   `form:"is_only_pemberkatan"`
	Notes             string `form:"notes"`
}

type GuestIDRequest struct {
	ID uint64 `form:"id" binding:"required"`
}

func GuestList(c *gin.Context, user *models.User) {
	r := struct {
		WeddingID uint64 `form:"wedding_id" binding:"required"`
		Status    string `form:"status"`
	}{}
	if err := c.ShouldBindWith(&r, binding.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := loadWeddingForUser(c, user, r.WeddingID); !ok {
		return
	}
	tx := db.Instance.Where("wedding_id = ?", r.WeddingID).Order("name ASC")
	if r.Status != "" {
		tx = tx.Where("rsvp_status = ?", r.Status)
	}
	var guests []models.Guest
	if err := tx.Find(&guests).Error; err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}

// GuestSave creates a guest (invitation code assigned here, immutable
// after) or updates one. The code is never touched on update.
func GuestSave(c *gin.Context, user *models.User) {
	r := GuestSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := loadWeddingForUser(c, user, r.WeddingID); !ok {
		return
	}
	numberOfGuests := r.NumberOfGuests
	if numberOfGuests < 1 {
		numberOfGuests = 1
	}
	maxGuests := r.MaxGuests
	if maxGuests < 1 {
		maxGuests = numberOfGuests
	}
	if r.ID == 0 {
		code := models.GenerateInvitationCode()
		guest := models.Guest{
			WeddingID:         r.WeddingID,
			Name:              r.Name,
			Email:             optionalString(r.Email),
			Phone:             optionalString(r.Phone),
			NumberOfGuests:    numberOfGuests,
			MaxGuests:         maxGuests,
			IsOnlyPemberkatan: r.IsOnlyPemberkatan,
			Notes:             r.Notes,
			RSVPStatus:        models.RSVPPending,
			InvitationCode:    &code,
		}
		if err := db.Instance.Create(&guest).Error; err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, guest)
		return
	}
	guest := models.Guest{}
	if err := db.Instance.First(&guest, "id = ? AND wedding_id = ?", r.ID, r.WeddingID).Error; err != nil {
		abortWithError(c, err)
		return
	}
	guest.Name = r.Name
	guest.Email = optionalString(r.Email)
	guest.Phone = optionalString(r.Phone)
	guest.NumberOfGuests = numberOfGuests
	guest.MaxGuests = maxGuests
	guest.IsOnlyPemberkatan = r.IsOnlyPemberkatan
	guest.Notes = r.Notes
	if err := db.Instance.Save(&guest).Error; err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, guest)
}

func GuestDelete(c *gin.Context, user *models.User) {
	r := GuestIDRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	guest := models.Guest{}
	if err := db.Instance.Preload("Wedding").First(&guest, r.ID).Error; err != nil {
		abortWithError(c, err)
		return
	}
	if !models.CanAccessWedding(user, &guest.Wedding) {
		c.JSON(http.StatusForbidden, ForbiddenResponse)
		return
	}
	if err := db.Instance.Delete(&models.Guest{}, "id = ?", r.ID).Error; err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// GuestInvitation returns the rendered invitation text and link for one
// guest, ready for clipboard copy or a wa.me link.
func GuestInvitation(c *gin.Context, user *models.User) {
	r := struct {
		ID uint64 `form:"guest_id" binding:"required"`
	}{}
	if err := c.ShouldBindWith(&r, binding.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	guest := models.Guest{}
	if err := db.Instance.Preload("Wedding").Preload("Wedding.InvitationTemplate").First(&guest, r.ID).Error; err != nil {
		abortWithError(c, err)
		return
	}
	if !models.CanAccessWedding(user, &guest.Wedding) {
		c.JSON(http.StatusForbidden, ForbiddenResponse)
		return
	}
	template := ""
	if guest.Wedding.InvitationTemplate != nil {
		template = guest.Wedding.InvitationTemplate.Template
	}
	text := invitation.RenderInvitation(template, &guest, &guest.Wedding)
	c.JSON(http.StatusOK, gin.H{
		"text": text,
		"url":  invitation.URL(&guest, &guest.Wedding),
	})
}

// GuestBackfillCodes assigns invitation codes to guests imported without
// one. SUPER_ADMIN only.
func GuestBackfillCodes(c *gin.Context, user *models.User) {
	updated, err := models.BackfillInvitationCodes()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
