// Package waha talks to a WAHA-style WhatsApp HTTP gateway. Message sends
// walk a fixed pacing sequence (seen -> typing -> stop typing -> send) so
// the account does not trip the gateway's spam heuristics.
package waha

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"wedding-admin/config"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

type Client struct {
	http    *resty.Client
	session string
	log     zerolog.Logger

	// injectable for tests
	sleep  func(time.Duration)
	random func() float64
}

func New(baseURL, session, apiKey string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		httpClient.SetHeader("X-Api-Key", apiKey)
	}
	return &Client{
		http:    httpClient,
		session: session,
		log:     zerolog.New(os.Stdout).With().Timestamp().Str("component", "waha").Logger(),
		sleep:   time.Sleep,
		random:  rand.Float64,
	}
}

// ChatID converts a raw phone number to the gateway chat identifier:
// digits only, a leading "0" rewritten to the configured country code,
// "@c.us" suffix.
func ChatID(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if strings.HasPrefix(cleaned, "0") {
		cleaned = config.PHONE_COUNTRY_CODE + cleaned[1:]
	}
	return cleaned + "@c.us"
}

func (c *Client) payload(chatID string) map[string]interface{} {
	return map[string]interface{}{
		"session": c.session,
		"chatId":  chatID,
	}
}

func (c *Client) post(endpoint string, body map[string]interface{}) error {
	resp, err := c.http.R().SetBody(body).Post(endpoint)
	if err != nil {
		return fmt.Errorf("gateway %s: %w", endpoint, err)
	}
	if resp.IsError() {
		return fmt.Errorf("gateway %s: status %d: %s", endpoint, resp.StatusCode(), resp.String())
	}
	return nil
}

func (c *Client) SendSeen(chatID string) error {
	return c.post("/api/sendSeen", c.payload(chatID))
}

func (c *Client) StartTyping(chatID string) error {
	return c.post("/api/startTyping", c.payload(chatID))
}

func (c *Client) StopTyping(chatID string) error {
	return c.post("/api/stopTyping", c.payload(chatID))
}

func (c *Client) SendText(chatID, text string) error {
	body := c.payload(chatID)
	body["text"] = text
	return c.post("/api/sendText", body)
}

func (c *Client) SendImage(chatID, imageURL, caption string) error {
	body := c.payload(chatID)
	body["file"] = map[string]interface{}{
		"mimetype": "image/jpeg",
		"filename": "invitation.jpg",
		"data":     imageURL,
	}
	body["caption"] = caption
	return c.post("/api/sendImage", body)
}

const (
	typingBaseDelay = 2 * time.Second
	typingSpeed     = 50 // characters per second
	typingMaxDelay  = 10 * time.Second
)

// typingDelay sizes the typing-indicator window to the message length,
// clamped to typingMaxDelay and jittered ±20%.
func (c *Client) typingDelay(length int) time.Duration {
	d := typingBaseDelay + time.Duration(float64(length)/typingSpeed*float64(time.Second))
	if d > typingMaxDelay {
		d = typingMaxDelay
	}
	return time.Duration(float64(d) * (0.8 + 0.4*c.random()))
}

// cleanup stops the typing indicator best-effort so it is never left stuck
// when a step fails before the message goes out.
func (c *Client) cleanup(chatID string) {
	if err := c.StopTyping(chatID); err != nil {
		c.log.Debug().Err(err).Str("chat_id", chatID).Msg("stop-typing cleanup failed")
	}
}

// SendMessage runs the full human-pacing sequence:
// mark seen, pause, type for a length-proportional window, stop typing,
// pause, send. Any failure before the send stops the typing indicator and
// returns the error.
func (c *Client) SendMessage(chatID, text string) (err error) {
	defer func() {
		if err != nil {
			c.cleanup(chatID)
		}
	}()
	if err = c.SendSeen(chatID); err != nil {
		return err
	}
	c.sleep(500*time.Millisecond + time.Duration(c.random()*float64(time.Second)))
	if err = c.StartTyping(chatID); err != nil {
		return err
	}
	c.sleep(c.typingDelay(len(text)))
	if err = c.StopTyping(chatID); err != nil {
		return err
	}
	c.sleep(200*time.Millisecond + time.Duration(c.random()*float64(300*time.Millisecond)))
	if err = c.SendText(chatID, text); err != nil {
		return err
	}
	c.log.Info().Str("chat_id", chatID).Int("length", len(text)).Msg("message sent")
	return nil
}

// SendImageMessage is the image variant of SendMessage. The typing window
// is a fixed 2-3s (no length to type).
func (c *Client) SendImageMessage(chatID, imageURL, caption string) (err error) {
	defer func() {
		if err != nil {
			c.cleanup(chatID)
		}
	}()
	if err = c.SendSeen(chatID); err != nil {
		return err
	}
	c.sleep(500*time.Millisecond + time.Duration(c.random()*float64(time.Second)))
	if err = c.StartTyping(chatID); err != nil {
		return err
	}
	c.sleep(2*time.Second + time.Duration(c.random()*float64(time.Second)))
	if err = c.StopTyping(chatID); err != nil {
		return err
	}
	c.sleep(200*time.Millisecond + time.Duration(c.random()*float64(300*time.Millisecond)))
	if err = c.SendImage(chatID, imageURL, caption); err != nil {
		return err
	}
	c.log.Info().Str("chat_id", chatID).Msg("image sent")
	return nil
}
