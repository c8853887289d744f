package invitation

import (
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strconv"

	"wedding-admin/config"
	"wedding-admin/models"
)

// Params is the guest payload carried by an invitation URL. The encoded
// form is base64 of this JSON and is reversible by anyone holding the URL:
// it hides field names from casual inspection, nothing more.
type Params struct {
	Name              string `json:"name"`
	MaxGuests         int    `json:"maxGuests"`
	IsOnlyPemberkatan bool   `json:"isOnlyPemberkatan"`
	Code              string `json:"code"`
}

func ParamsFor(g *models.Guest, w *models.Wedding) Params {
	p := Params{
		Name:              g.Name,
		MaxGuests:         g.MaxGuests,
		IsOnlyPemberkatan: g.IsOnlyPemberkatan,
	}
	if p.MaxGuests < 1 {
		p.MaxGuests = 1
	}
	if g.InvitationCode != nil {
		p.Code = *g.InvitationCode
	}
	return p
}

// URL builds the guest's invitation link. With EncodeInvitationParams off
// the guest fields go on as plain query parameters; with it on they are
// packed into a single base64 "data" parameter. Short-link resolution
// calls this same function, so both paths always agree.
func URL(g *models.Guest, w *models.Wedding) string {
	base := config.INVITATION_BASE_URL
	p := ParamsFor(g, w)
	if w.EncodeInvitationParams {
		data, _ := json.Marshal(p)
		return base + "?data=" + base64.StdEncoding.EncodeToString(data)
	}
	q := url.Values{}
	q.Set("name", p.Name)
	q.Set("maxGuests", strconv.Itoa(p.MaxGuests))
	q.Set("isOnlyPemberkatan", strconv.FormatBool(p.IsOnlyPemberkatan))
	q.Set("code", p.Code)
	return base + "?" + q.Encode()
}
