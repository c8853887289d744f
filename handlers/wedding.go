package handlers

import (
	"net/http"
	"time"

	"wedding-admin/db"
	"wedding-admin/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type WeddingSaveRequest struct {
	ID                     uint64 `form:"id"`
	Name                   string `form:"name" binding:"required"`
	Slug                   string `form:"slug" binding:"required"`
	GroomName              string `form:"groom_name" binding:"required"`
	BrideName              string `form:"bride_name" binding:"required"`
	WeddingDate            string `form:"wedding_date" binding:"required"` // YYYY-MM-DD
	Venue                  string `form:"venue"`
	Description            string `form:"description"`
	AdminID                uint64 `form:"admin_id"`
	EncodeInvitationParams bool   `form:"encode_invitation_params"`
}

type WeddingIDRequest struct {
	ID uint64 `form:"id" binding:"required"`
}

func WeddingList(c *gin.Context, user *models.User) {
	var weddings []models.Wedding
	tx := db.Instance.Order("wedding_date ASC")
	if !user.IsSuperAdmin() {
		tx = tx.Where("admin_id = ?", user.ID)
	}
	if err := tx.Find(&weddings).Error; err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, weddings)
}

// WeddingSave creates a wedding (SUPER_ADMIN only) or updates one the user
// owns. The owning admin can only be reassigned by a SUPER_ADMIN.
func WeddingSave(c *gin.Context, user *models.User) {
	r := WeddingSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	weddingDate, err := time.Parse("2006-01-02", r.WeddingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wedding_date"})
		return
	}
	if r.ID == 0 {
		if !user.IsSuperAdmin() {
			c.JSON(http.StatusForbidden, ForbiddenResponse)
			return
		}
		adminID := r.AdminID
		if adminID == 0 {
			adminID = user.ID
		}
		wedding := models.Wedding{
			Name:                   r.Name,
			Slug:                   r.Slug,
			GroomName:              r.GroomName,
			BrideName:              r.BrideName,
			WeddingDate:            weddingDate,
			Venue:                  r.Venue,
			Description:            r.Description,
			AdminID:                adminID,
			EncodeInvitationParams: r.EncodeInvitationParams,
		}
		if err := db.Instance.Create(&wedding).Error; err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, wedding)
		return
	}
	wedding := models.Wedding{}
	if err := db.Instance.First(&wedding, r.ID).Error; err != nil {
		abortWithError(c, err)
		return
	}
	if !models.CanAccessWedding(user, &wedding) {
		c.JSON(http.StatusForbidden, ForbiddenResponse)
		return
	}
	wedding.Name = r.Name
	wedding.Slug = r.Slug
	wedding.GroomName = r.GroomName
	wedding.BrideName = r.BrideName
	wedding.WeddingDate = weddingDate
	wedding.Venue = r.Venue
	wedding.Description = r.Description
	wedding.EncodeInvitationParams = r.EncodeInvitationParams
	if user.IsSuperAdmin() && r.AdminID != 0 {
		wedding.AdminID = r.AdminID
	}
	if err := db.Instance.Save(&wedding).Error; err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, wedding)
}

func WeddingDelete(c *gin.Context, user *models.User) {
	r := WeddingIDRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := loadWeddingForUser(c, user, r.ID); !ok {
		return
	}
	if err := db.Instance.Delete(&models.Wedding{}, "id = ?", r.ID).Error; err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse)
}

// loadWeddingForUser loads a wedding and enforces the ownership predicate.
// Returns false after writing the error response.
func loadWeddingForUser(c *gin.Context, user *models.User, weddingID uint64) (models.Wedding, bool) {
	wedding := models.Wedding{}
	if err := db.Instance.First(&wedding, weddingID).Error; err != nil {
		abortWithError(c, err)
		return wedding, false
	}
	if !models.CanAccessWedding(user, &wedding) {
		c.JSON(http.StatusForbidden, ForbiddenResponse)
		return wedding, false
	}
	return wedding, true
}
