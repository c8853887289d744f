package invitation

import (
	"strings"
	"testing"
	"time"

	"wedding-admin/models"

	"github.com/stretchr/testify/assert"
)

func testWedding() models.Wedding {
	return models.Wedding{
		Name:        "Budi & Sari",
		GroomName:   "Budi",
		BrideName:   "Sari",
		WeddingDate: time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		Venue:       "Gedung Serbaguna",
	}
}

func TestFormatWeddingDate(t *testing.T) {
	got := FormatWeddingDate(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Minggu, 15 Juni 2025", got)
}

func TestRenderInvitation(t *testing.T) {
	wedding := testWedding()
	code := "ABC123XYZ0"
	guest := models.Guest{Name: "Ana", MaxGuests: 2, InvitationCode: &code}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "no tokens is idempotent",
			template: "Hello there, see you soon!",
			want:     "Hello there, see you soon!",
		},
		{
			name:     "every occurrence replaced",
			template: "{guestName}-{guestName}",
			want:     "Ana-Ana",
		},
		{
			name:     "mixed tokens",
			template: "Dear {guestName}, {maxGuests} seats at {venue} on {weddingDate}",
			want:     "Dear Ana, 2 seats at Gedung Serbaguna on Minggu, 15 Juni 2025",
		},
		{
			name:     "unknown tokens untouched",
			template: "Hi {guestName}, {unknownToken} stays",
			want:     "Hi Ana, {unknownToken} stays",
		},
		{
			name:     "invitation code",
			template: "code={invitationCode} flag={isOnlyPemberkatan}",
			want:     "code=ABC123XYZ0 flag=false",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderInvitation(tt.template, &guest, &wedding))
		})
	}
}

func TestRenderInvitationMissingCode(t *testing.T) {
	wedding := testWedding()
	guest := models.Guest{Name: "Ana"}
	got := RenderInvitation("code={invitationCode}", &guest, &wedding)
	assert.Equal(t, "code=MISSING_CODE", got)
}

func TestRenderInvitationVenueDefault(t *testing.T) {
	wedding := testWedding()
	wedding.Venue = ""
	guest := models.Guest{Name: "Ana"}
	assert.Equal(t, "TBA", RenderInvitation("{venue}", &guest, &wedding))
}

func TestRenderInvitationEncodedName(t *testing.T) {
	wedding := testWedding()
	guest := models.Guest{Name: "Budi & Sari"}
	got := RenderInvitation("{guestNameEncoded}", &guest, &wedding)
	assert.NotContains(t, got, " ")
	assert.NotContains(t, got, "&")
}

func TestRenderInvitationDefaultTemplate(t *testing.T) {
	wedding := testWedding()
	code := "ABC123XYZ0"
	guest := models.Guest{Name: "Ana", InvitationCode: &code}
	got := RenderInvitation("", &guest, &wedding)
	assert.Contains(t, got, "Ana")
	assert.Contains(t, got, "Budi & Sari")
	assert.Contains(t, got, "Minggu, 15 Juni 2025")
	assert.NotContains(t, got, "{guestName}")
	assert.NotContains(t, got, "{invitationUrl}")
}

func TestRenderInvitationSubstitutedValueKeepsTokenText(t *testing.T) {
	// A guest whose name looks like a token must not be re-substituted
	wedding := testWedding()
	guest := models.Guest{Name: "{venue}"}
	got := RenderInvitation("{guestName} at {venue}", &guest, &wedding)
	assert.Equal(t, "{venue} at Gedung Serbaguna", got)
}

func TestRenderMessage(t *testing.T) {
	wedding := testWedding()
	code := "ABC123XYZ0"
	guest := models.Guest{Name: "Ana", InvitationCode: &code}

	got := RenderMessage("To {GUEST_NAME}: {GROOM_NAME} & {BRIDE_NAME}, {WEDDING_DATE} at {VENUE}\n{INVITATION_URL}", &guest, &wedding)
	assert.True(t, strings.HasPrefix(got, "To Ana: Budi & Sari, Minggu, 15 Juni 2025 at Gedung Serbaguna"), "got %q", got)
	assert.Contains(t, got, URL(&guest, &wedding))
}

func TestRenderMessageDefaultTemplate(t *testing.T) {
	wedding := testWedding()
	guest := models.Guest{Name: "Ana"}
	got := RenderMessage("", &guest, &wedding)
	assert.Contains(t, got, "Ana")
	assert.Contains(t, got, "Budi")
	assert.Contains(t, got, "Sari")
	assert.NotContains(t, got, "{GUEST_NAME}")
	assert.NotContains(t, got, "{INVITATION_URL}")
}

func TestRenderMessageLowercaseTokensUntouched(t *testing.T) {
	// The two vocabularies are distinct: lowercase tokens belong to the
	// invitation template only
	wedding := testWedding()
	guest := models.Guest{Name: "Ana"}
	got := RenderMessage("{guestName} {GUEST_NAME}", &guest, &wedding)
	assert.Equal(t, "{guestName} Ana", got)
}
