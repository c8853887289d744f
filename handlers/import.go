package handlers

import (
	"net/http"
	"strconv"

	"wedding-admin/models"

	"github.com/gin-gonic/gin"
)

// GuestImport takes a CSV upload ("file" part, wedding_id form value) and
// creates one guest per row. Duplicate phones within the wedding are
// counted and skipped, never fatal.
func GuestImport(c *gin.Context, user *models.User) {
	weddingID, err := strconv.ParseUint(c.PostForm("wedding_id"), 10, 64)
	if err != nil || weddingID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wedding_id required"})
		return
	}
	if _, ok := loadWeddingForUser(c, user, weddingID); !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer file.Close()
	rows, err := models.ParseGuestCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid CSV: " + err.Error()})
		return
	}
	result, err := models.ImportGuests(weddingID, rows)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
