package whatsapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"agency-server/internal/config"
	"agency-server/internal/observability"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var (
	ErrWhatsAppDisabled = errors.New("whatsapp delivery is not configured")
	ErrSendFailed       = errors.New("whatsapp send failed")
)

const channelPrefix = "whatsapp:"

type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// Client sends WhatsApp messages through Twilio
type Client struct {
	api    messageCreator
	from   string
	logger *observability.Logger
}

// NewClient returns a disabled client when Twilio credentials are missing; Send then fails with ErrWhatsAppDisabled.
func NewClient(cfg config.TwilioConfig, logger *observability.Logger) *Client {
	if !cfg.Enabled() {
		logger.Info(context.Background(), "Twilio is disabled, WhatsApp messages can only be previewed")
		return &Client{logger: logger}
	}

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return newClient(rest.Api, cfg.WhatsAppFrom, logger)
}

func newClient(api messageCreator, from string, logger *observability.Logger) *Client {
	return &Client{api: api, from: withChannel(from), logger: logger}
}

// Enabled reports whether messages can be delivered.
func (c *Client) Enabled() bool {
	return c != nil && c.api != nil
}

// Send delivers body to an international number given as digits (e.g. "6281234567890")
// and returns the Twilio message SID.
func (c *Client) Send(ctx context.Context, phone, body string) (string, error) {
	if !c.Enabled() {
		return "", ErrWhatsAppDisabled
	}

	to := withChannel("+" + strings.TrimPrefix(phone, "+"))
	ctx = observability.WithFields(ctx, observability.Field{Key: "whatsapp_to", Value: to})

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(c.from)
	params.SetBody(body)

	resp, err := c.api.CreateMessage(params)
	if err != nil {
		c.logger.Error(ctx, "failed to send whatsapp message", err)
		return "", fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	var sid string
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	c.logger.Info(observability.WithFields(ctx, observability.Field{Key: "message_sid", Value: sid}), "whatsapp message sent")
	return sid, nil
}

func withChannel(addr string) string {
	if strings.HasPrefix(addr, channelPrefix) {
		return addr
	}
	return channelPrefix + addr
}
