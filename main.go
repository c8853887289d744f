package main

import (
	"log"
	"strings"
	"time"

	"wedding-admin/auth"
	"wedding-admin/config"
	"wedding-admin/db"
	"wedding-admin/handlers"
	"wedding-admin/models"
	"wedding-admin/utils"
	"wedding-admin/waha"
	"wedding-admin/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/sessions"
	gormsessions "github.com/gin-contrib/sessions/gorm"
	"github.com/gin-gonic/autotls"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName     = "token"
	sessionExpirationTime = 30 * 86400 // 30 days
)

func main() {
	db.Init()
	models.Init()
	handlers.Gateway = waha.New(config.WAHA_URL, config.WAHA_SESSION, config.WAHA_API_KEY)

	router := gin.Default()
	_ = router.SetTrustedProxies([]string{})
	if config.DEBUG_MODE {
		router.Use(utils.ErrorLogMiddleware)
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           30 * 24 * time.Hour,
	}))

	cookieStore := gormsessions.NewStore(db.Instance, true, []byte(config.SESSION_KEY))
	cookieStore.Options(sessions.Options{MaxAge: sessionExpirationTime})
	router.Use(sessions.Sessions(sessionCookieName, cookieStore))
	if !config.DEBUG_MODE {
		router.Use(gzip.Gzip(gzip.DefaultCompression))
	}

	// Custom Auth Router
	authRouter := &auth.Router{Base: router}
	// User handlers
	router.POST("/user/login", handlers.UserLogin)
	authRouter.POST("/user/logout", handlers.UserLogout)
	authRouter.GET("/user/list", handlers.UserList, models.RoleSuperAdmin)
	authRouter.POST("/user/save", handlers.UserSave, models.RoleSuperAdmin)
	authRouter.POST("/user/delete", handlers.UserDelete, models.RoleSuperAdmin)
	// Wedding handlers
	authRouter.GET("/wedding/list", handlers.WeddingList)
	authRouter.POST("/wedding/save", handlers.WeddingSave) // create requires SUPER_ADMIN (in handler)
	authRouter.POST("/wedding/delete", handlers.WeddingDelete, models.RoleSuperAdmin)
	// Guest handlers
	authRouter.GET("/guest/list", handlers.GuestList)
	authRouter.POST("/guest/save", handlers.GuestSave)
	authRouter.POST("/guest/delete", handlers.GuestDelete)
	authRouter.GET("/guest/invitation", handlers.GuestInvitation)
	authRouter.POST("/guest/import", handlers.GuestImport)
	authRouter.GET("/guest/export", handlers.GuestExport)
	authRouter.POST("/guest/backfill-codes", handlers.GuestBackfillCodes, models.RoleSuperAdmin)
	// Template handlers
	authRouter.GET("/invitation-template", handlers.InvitationTemplateGet)
	authRouter.POST("/invitation-template", handlers.InvitationTemplateSave)
	authRouter.GET("/message-template", handlers.MessageTemplateGet)
	authRouter.POST("/message-template", handlers.MessageTemplateSave)
	// WhatsApp handlers
	authRouter.POST("/whatsapp/send", handlers.WhatsAppSend)
	authRouter.POST("/whatsapp/send-image", handlers.WhatsAppSendImage)
	authRouter.POST("/whatsapp/send-bulk", handlers.WhatsAppSendBulk)

	/*
	 *	Public endpoints consumed by the invitation site
	 */
	router.GET("/s/:code", web.ShortURL)
	router.OPTIONS("/s/:code", web.CORSPreflight)
	router.POST("/rsvp/webhook", web.RSVPWebhook)
	router.OPTIONS("/rsvp/webhook", web.CORSPreflight)

	var err error
	if config.TLS_DOMAINS != "" {
		err = autotls.Run(router, strings.Split(config.TLS_DOMAINS, ",")...)
	} else {
		err = router.Run(config.BIND_ADDRESS)
	}
	log.Fatalf("Server stopped: %v", err)
}
