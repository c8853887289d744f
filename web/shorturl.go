// Package web holds the public, unauthenticated endpoints consumed by the
// invitation site: short-link resolution and the RSVP webhook. Both are
// CORS-open since the invitation site lives on another origin.
package web

import (
	"net/http"

	"wedding-admin/invitation"
	"wedding-admin/models"

	"github.com/gin-gonic/gin"
)

func corsOpen(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
}

func CORSPreflight(c *gin.Context) {
	corsOpen(c)
	c.Status(http.StatusOK)
}

// ShortURL resolves an invitation code to the guest's full invitation URL.
// No mapping table exists: the URL is reconstructed from guest + wedding
// state with the same rule the direct link codec uses.
func ShortURL(c *gin.Context) {
	corsOpen(c)
	code := c.Param("code")
	guest, err := models.GuestByInvitationCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid invitation code"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"redirectUrl": invitation.URL(&guest, &guest.Wedding),
		"guest": gin.H{
			"name":              guest.Name,
			"maxGuests":         guest.MaxGuests,
			"isOnlyPemberkatan": guest.IsOnlyPemberkatan,
			"code":              guest.InvitationCode,
		},
	})
}
