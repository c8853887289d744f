package invitation

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"wedding-admin/models"

	"github.com/go-playground/locales/id"
)

// MissingCode is substituted for {invitationCode} when a guest has no code
// assigned, so bulk operations over half-imported guest lists keep working.
const MissingCode = "MISSING_CODE"

// DefaultInvitationTemplate is the fallback invitation text used whenever a
// wedding has no custom template.
const DefaultInvitationTemplate = `Halo {guestName}! 👋

Kami dengan senang hati mengundang Anda untuk menghadiri pernikahan kami:

💑 {weddingName}
📅 {weddingDate}
📍 {venue}

Silakan konfirmasi kehadiran Anda melalui link berikut:
🔗 {invitationUrl}

Terima kasih! 🙏`

// DefaultMessageTemplate is the fallback WhatsApp message used when a
// wedding has no active message template.
const DefaultMessageTemplate = `✨ *WEDDING INVITATION* ✨

Assalamu'alaikum Wr. Wb.

Dear *{GUEST_NAME}*,

With the grace and blessing of Allah SWT, we joyfully invite you to celebrate the wedding of:

*{GROOM_NAME}* 💍 *{BRIDE_NAME}*

🗓 *{WEDDING_DATE}*

📍 *{VENUE}*

━━━━━━━━━━━━━━━━━━━
Your presence would be a great honor for us. Please confirm your attendance through the link below:

🔗 *Digital Invitation & RSVP:*
{INVITATION_URL}

━━━━━━━━━━━━━━━━━━━

May your prayers accompany our journey to build a _sakinah, mawaddah, warahmah_ family.

Wassalamu'alaikum Wr. Wb.

Best Regards,
The Wedding Family 💐`

var idLocale = id.New()

// FormatWeddingDate renders the Indonesian long date form,
// e.g. "Minggu, 15 Juni 2025".
func FormatWeddingDate(t time.Time) string {
	return idLocale.FmtDateFull(t)
}

// RenderInvitation substitutes the invitation-template vocabulary into
// template, falling back to DefaultInvitationTemplate when empty. Every
// occurrence of a known token is replaced in a single pass, so substituted
// values can never reintroduce a token; unknown {...} text is left as-is.
func RenderInvitation(template string, g *models.Guest, w *models.Wedding) string {
	if template == "" {
		template = DefaultInvitationTemplate
	}
	code := MissingCode
	if g.InvitationCode != nil && *g.InvitationCode != "" {
		code = *g.InvitationCode
	}
	maxGuests := g.MaxGuests
	if maxGuests < 1 {
		maxGuests = 1
	}
	venue := w.Venue
	if venue == "" {
		venue = "TBA"
	}
	r := strings.NewReplacer(
		"{guestName}", g.Name,
		"{guestNameEncoded}", url.QueryEscape(g.Name),
		"{invitationCode}", code,
		"{maxGuests}", strconv.Itoa(maxGuests),
		"{isOnlyPemberkatan}", strconv.FormatBool(g.IsOnlyPemberkatan),
		"{weddingName}", w.Name,
		"{weddingDate}", FormatWeddingDate(w.WeddingDate),
		"{venue}", venue,
		"{invitationUrl}", URL(g, w),
	)
	return r.Replace(template)
}

// RenderMessage substitutes the WhatsApp message vocabulary (the uppercase
// token set) into template, falling back to DefaultMessageTemplate when
// empty. Same single-pass replacement rules as RenderInvitation.
func RenderMessage(template string, g *models.Guest, w *models.Wedding) string {
	if template == "" {
		template = DefaultMessageTemplate
	}
	r := strings.NewReplacer(
		"{GUEST_NAME}", g.Name,
		"{GROOM_NAME}", w.GroomName,
		"{BRIDE_NAME}", w.BrideName,
		"{WEDDING_DATE}", FormatWeddingDate(w.WeddingDate),
		"{VENUE}", w.Venue,
		"{INVITATION_URL}", URL(g, w),
	)
	return strings.TrimSpace(r.Replace(template))
}
