package handlers

import (
	"errors"
	"net/http"

	"wedding-admin/db"
	"wedding-admin/invitation"
	"wedding-admin/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"
)

type templateWeddingRequest struct {
	WeddingID uint64 `form:"wedding_id" binding:"required"`
}

type InvitationTemplateSaveRequest struct {
	WeddingID uint64 `form:"wedding_id" binding:"required"`
	Template  string `form:"template" binding:"required"`
}

type MessageTemplateSaveRequest struct {
	WeddingID uint64 `form:"wedding_id" binding:"required"`
	Message   string `form:"message" binding:"required"`
	ImageURL  string `form:"image_url"`
	IsActive  bool   `form:"is_active"`
}

// InvitationTemplateGet returns the wedding's invitation template,
// creating it from the default text on first access.
func InvitationTemplateGet(c *gin.Context, user *models.User) {
	r := templateWeddingRequest{}
	if err := c.ShouldBindWith(&r, binding.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := loadWeddingForUser(c, user, r.WeddingID); !ok {
		return
	}
	template := models.InvitationTemplate{}
	err := db.Instance.First(&template, "wedding_id = ?", r.WeddingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		template = models.InvitationTemplate{
			WeddingID: r.WeddingID,
			Template:  invitation.DefaultInvitationTemplate,
		}
		err = db.Instance.Create(&template).Error
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func InvitationTemplateSave(c *gin.Context, user *models.User) {
	r := InvitationTemplateSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := loadWeddingForUser(c, user, r.WeddingID); !ok {
		return
	}
	template := models.InvitationTemplate{}
	err := db.Instance.First(&template, "wedding_id = ?", r.WeddingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		template = models.InvitationTemplate{WeddingID: r.WeddingID, Template: r.Template}
		err = db.Instance.Create(&template).Error
	} else if err == nil {
		template.Template = r.Template
		err = db.Instance.Save(&template).Error
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func MessageTemplateGet(c *gin.Context, user *models.User) {
	r := templateWeddingRequest{}
	if err := c.ShouldBindWith(&r, binding.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := loadWeddingForUser(c, user, r.WeddingID); !ok {
		return
	}
	template := models.MessageTemplate{}
	err := db.Instance.First(&template, "wedding_id = ?", r.WeddingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		template = models.MessageTemplate{
			WeddingID: r.WeddingID,
			Message:   invitation.DefaultMessageTemplate,
			IsActive:  true,
		}
		err = db.Instance.Create(&template).Error
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}

func MessageTemplateSave(c *gin.Context, user *models.User) {
	r := MessageTemplateSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := loadWeddingForUser(c, user, r.WeddingID); !ok {
		return
	}
	template := models.MessageTemplate{}
	err := db.Instance.First(&template, "wedding_id = ?", r.WeddingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		template = models.MessageTemplate{
			WeddingID: r.WeddingID,
			Message:   r.Message,
			ImageURL:  r.ImageURL,
			IsActive:  r.IsActive,
		}
		err = db.Instance.Create(&template).Error
	} else if err == nil {
		template.Message = r.Message
		template.ImageURL = r.ImageURL
		template.IsActive = r.IsActive
		err = db.Instance.Save(&template).Error
	}
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, template)
}
