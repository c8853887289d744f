package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wedding-admin/config"
	"wedding-admin/db"
	"wedding-admin/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupWebTest(t *testing.T) (*gin.Engine, models.Wedding) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	name := strings.ReplaceAll(t.Name(), "/", "_")
	instance, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	db.Instance = instance
	models.Init()

	config.RSVP_WEBHOOK_SECRET = "hook-secret"
	t.Cleanup(func() { config.RSVP_WEBHOOK_SECRET = "" })

	admin, err := models.UserCreate("Admin", "admin@example.com", "secret123", models.RoleAdmin)
	require.NoError(t, err)
	wedding := models.Wedding{Name: "Budi & Sari", Slug: "budi-sari", AdminID: admin.ID}
	require.NoError(t, db.Instance.Create(&wedding).Error)

	router := gin.New()
	router.GET("/s/:code", ShortURL)
	router.POST("/rsvp/webhook", RSVPWebhook)
	return router, wedding
}

func postWebhook(t *testing.T, router *gin.Engine, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/rsvp/webhook", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestRSVPWebhookRejectsBadSecret(t *testing.T) {
	router, _ := setupWebTest(t)

	w := postWebhook(t, router, gin.H{"weddingSlug": "budi-sari", "apiKey": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRSVPWebhookRequiresGuestIdentifier(t *testing.T) {
	router, wedding := setupWebTest(t)

	w := postWebhook(t, router, gin.H{
		"weddingSlug": wedding.Slug,
		"apiKey":      "hook-secret",
		"guestData":   gin.H{"name": "   ", "isAttending": true},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Instance.Model(&models.Guest{}).Count(&count)
	assert.Zero(t, count, "no guest row is created for an anonymous submission")
}

func TestRSVPWebhookByInvitationCode(t *testing.T) {
	router, wedding := setupWebTest(t)

	code := models.GenerateInvitationCode()
	guest := models.Guest{WeddingID: wedding.ID, Name: "Andi", InvitationCode: &code}
	require.NoError(t, db.Instance.Create(&guest).Error)

	w := postWebhook(t, router, gin.H{
		"weddingSlug": wedding.Slug,
		"apiKey":      "hook-secret",
		"guestData": gin.H{
			"name":           "Andi",
			"invitationCode": code,
			"isAttending":    true,
			"numberOfGuests": 2,
			"eventType":      string(models.EventBlessingReception),
			"message":        "See you there",
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Guest
	require.NoError(t, db.Instance.First(&stored, guest.ID).Error)
	assert.Equal(t, models.RSVPConfirmed, stored.RSVPStatus)
	assert.Equal(t, 2, stored.NumberOfGuests)
	assert.Equal(t, models.EventBlessingReception, stored.EventType)
	assert.Equal(t, "See you there", stored.Notes)
	require.NotNil(t, stored.RSVPAt)
}

func TestRSVPWebhookCodeForWrongWedding(t *testing.T) {
	router, wedding := setupWebTest(t)

	other := models.Wedding{Name: "Other", Slug: "other", AdminID: wedding.AdminID}
	require.NoError(t, db.Instance.Create(&other).Error)
	code := models.GenerateInvitationCode()
	guest := models.Guest{WeddingID: other.ID, Name: "Andi", InvitationCode: &code}
	require.NoError(t, db.Instance.Create(&guest).Error)

	w := postWebhook(t, router, gin.H{
		"weddingSlug": wedding.Slug,
		"apiKey":      "hook-secret",
		"guestData":   gin.H{"invitationCode": code, "isAttending": true},
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRSVPWebhookByPhone(t *testing.T) {
	router, wedding := setupWebTest(t)

	phone := "081234567890"
	guest := models.Guest{WeddingID: wedding.ID, Name: "Rina", Phone: &phone}
	require.NoError(t, db.Instance.Create(&guest).Error)

	w := postWebhook(t, router, gin.H{
		"weddingSlug": wedding.Slug,
		"apiKey":      "hook-secret",
		"guestData":   gin.H{"name": "Rina Baru", "phone": phone, "isAttending": false},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Guest
	require.NoError(t, db.Instance.First(&stored, guest.ID).Error)
	assert.Equal(t, models.RSVPDeclined, stored.RSVPStatus)
	assert.Equal(t, "Rina Baru", stored.Name)
}

func TestRSVPWebhookCreatesUnknownGuest(t *testing.T) {
	router, wedding := setupWebTest(t)

	w := postWebhook(t, router, gin.H{
		"weddingSlug": wedding.Slug,
		"apiKey":      "hook-secret",
		"guestData":   gin.H{"name": "Tamu Baru", "isAttending": true},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Guest
	require.NoError(t, db.Instance.First(&stored, "wedding_id = ? AND name = ?", wedding.ID, "Tamu Baru").Error)
	assert.Equal(t, models.RSVPConfirmed, stored.RSVPStatus)
	assert.Nil(t, stored.InvitationCode, "walk-in guests get no invitation code")
}

func TestShortURL(t *testing.T) {
	router, wedding := setupWebTest(t)

	code := models.GenerateInvitationCode()
	guest := models.Guest{WeddingID: wedding.ID, Name: "Andi", MaxGuests: 3, InvitationCode: &code}
	require.NoError(t, db.Instance.Create(&guest).Error)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/s/"+code, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		RedirectURL string `json:"redirectUrl"`
		Guest       struct {
			Name      string `json:"name"`
			MaxGuests int    `json:"maxGuests"`
			Code      string `json:"code"`
		} `json:"guest"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Andi", resp.Guest.Name)
	assert.Equal(t, 3, resp.Guest.MaxGuests)
	assert.Equal(t, code, resp.Guest.Code)
	assert.Contains(t, resp.RedirectURL, config.INVITATION_BASE_URL)
	assert.Contains(t, resp.RedirectURL, "code="+code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/s/NOSUCHCODE", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
