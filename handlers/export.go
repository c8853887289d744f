package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"wedding-admin/db"
	"wedding-admin/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/xuri/excelize/v2"
)

var exportHeader = []string{"name", "email", "phone", "numberOfGuests", "maxGuests", "isOnlyPemberkatan", "rsvpStatus", "invitationCode", "invitationSent", "notes"}

// GuestExport dumps guests with phone numbers as json, csv or xlsx.
// A regular admin only sees guests of weddings they own.
func GuestExport(c *gin.Context, user *models.User) {
	r := struct {
		WeddingID uint64 `form:"wedding_id"`
		Format    string `form:"format"`
		Status    string `form:"status"`
	}{}
	if err := c.ShouldBindWith(&r, binding.Query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tx := db.Instance.Where("phone IS NOT NULL").Order("name ASC")
	if r.WeddingID != 0 {
		if _, ok := loadWeddingForUser(c, user, r.WeddingID); !ok {
			return
		}
		tx = tx.Where("wedding_id = ?", r.WeddingID)
	} else if !user.IsSuperAdmin() {
		tx = tx.Where("wedding_id IN (?)", db.Instance.Model(&models.Wedding{}).Select("id").Where("admin_id = ?", user.ID))
	}
	if r.Status != "" {
		tx = tx.Where("rsvp_status = ?", r.Status)
	}
	var guests []models.Guest
	if err := tx.Find(&guests).Error; err != nil {
		abortWithError(c, err)
		return
	}
	switch r.Format {
	case "csv":
		exportCSV(c, guests)
	case "xlsx":
		exportXLSX(c, guests)
	default:
		c.JSON(http.StatusOK, guests)
	}
}

func exportRow(g *models.Guest) []string {
	return []string{
		g.Name,
		deref(g.Email),
		deref(g.Phone),
		strconv.Itoa(g.NumberOfGuests),
		strconv.Itoa(g.MaxGuests),
		strconv.FormatBool(g.IsOnlyPemberkatan),
		string(g.RSVPStatus),
		deref(g.InvitationCode),
		strconv.FormatBool(g.InvitationSent),
		g.Notes,
	}
}

func exportCSV(c *gin.Context, guests []models.Guest) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="guests.csv"`)
	w := csv.NewWriter(c.Writer)
	_ = w.Write(exportHeader)
	for i := range guests {
		_ = w.Write(exportRow(&guests[i]))
	}
	w.Flush()
}

func exportXLSX(c *gin.Context, guests []models.Guest) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Guests"
	_ = f.SetSheetName("Sheet1", sheet)
	for col, title := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, title)
	}
	for i := range guests {
		for col, value := range exportRow(&guests[i]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			_ = f.SetCellValue(sheet, cell, value)
		}
	}
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="guests.xlsx"`)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("xlsx write: %v", err)})
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
