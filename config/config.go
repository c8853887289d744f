package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS  = ""                 // e.g. "example.com,example2.com"
	MYSQL_DSN    = ""                 // MySQL will be used if this is set
	SQLITE_FILE  = "wedding-admin.db" // SQLite will be used if MYSQL_DSN is not configured
	BIND_ADDRESS = "0.0.0.0:8080"
	DEBUG_MODE   = true

	// Invitation site guests land on; guest parameters are appended to it
	INVITATION_BASE_URL = "https://invitation.example.com"

	// WAHA-style WhatsApp gateway
	WAHA_URL     = "http://localhost:3001"
	WAHA_SESSION = "default"
	WAHA_API_KEY = ""

	// A leading "0" in guest phone numbers is rewritten to this country code
	PHONE_COUNTRY_CODE = "62"

	// Shared secret the invitation site must present on RSVP webhook calls
	RSVP_WEBHOOK_SECRET = ""

	// Key the session cookie store signs with; override in production
	SESSION_KEY = "this is a long key"

	BULK_SEND_DELAY_SECONDS = 5    // pause between consecutive bulk sends
	RESEND_COOLDOWN_SECONDS = 3600 // sends within this window of the previous one are skipped
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("INVITATION_BASE_URL", &INVITATION_BASE_URL)
	readEnvString("WAHA_URL", &WAHA_URL)
	readEnvString("WAHA_SESSION", &WAHA_SESSION)
	readEnvString("WAHA_API_KEY", &WAHA_API_KEY)
	readEnvString("PHONE_COUNTRY_CODE", &PHONE_COUNTRY_CODE)
	readEnvString("RSVP_WEBHOOK_SECRET", &RSVP_WEBHOOK_SECRET)
	readEnvString("SESSION_KEY", &SESSION_KEY)
	readEnvInt("BULK_SEND_DELAY_SECONDS", &BULK_SEND_DELAY_SECONDS)
	readEnvInt("RESEND_COOLDOWN_SECONDS", &RESEND_COOLDOWN_SECONDS)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	f, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = f
}
