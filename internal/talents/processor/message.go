package processor

import (
	"context"
	"errors"
	"fmt"

	bonusProcessor "agency-server/internal/bonus/processor"
	"agency-server/internal/messaging"
	"agency-server/internal/observability"

	"github.com/google/uuid"
)

var ErrInvalidMessageKind = errors.New("message kind must be bonus or performance")

type MessageKind string

const (
	MessageBonus       MessageKind = "bonus"
	MessagePerformance MessageKind = "performance"
)

// MessageParams selects the period and template. An empty period means the latest one on record.
type MessageParams struct {
	Period string
	Kind   MessageKind
	Send   bool
}

type MessageResult struct {
	Text       string              `json:"text"`
	WaLink     string              `json:"wa_link"`
	CanSend    bool                `json:"can_send"`
	Sent       bool                `json:"sent"`
	MessageSID string              `json:"message_sid,omitempty"`
	Bonus      bonusProcessor.Line `json:"bonus"`
}

// ComposeMessage builds a talent's WhatsApp recap and click-to-chat link, and sends it through
// the configured provider when params.Send is set.
func (p *TalentProcessor) ComposeMessage(ctx context.Context, creatorID uuid.UUID, params MessageParams) (MessageResult, error) {
	if params.Kind == "" {
		params.Kind = MessageBonus
	}
	if params.Kind != MessageBonus && params.Kind != MessagePerformance {
		return MessageResult{}, fmt.Errorf("%w: %q", ErrInvalidMessageKind, params.Kind)
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "creator_id", Value: creatorID.String()},
		observability.Field{Key: "message_kind", Value: string(params.Kind)},
	)

	talent, err := p.getTalent(ctx, creatorID)
	if err != nil {
		return MessageResult{}, err
	}
	if talent.ContactPhone == nil {
		return MessageResult{}, ErrMissingPhone
	}
	phone, err := messaging.NormalizePhone(*talent.ContactPhone)
	if err != nil {
		return MessageResult{}, err
	}

	line, err := p.bonus.ForCreator(ctx, creatorID, params.Period)
	if err != nil {
		return MessageResult{}, err
	}

	perf := messaging.PerformanceMessage{
		Name:      talent.Username,
		Period:    line.Period,
		Diamonds:  line.Diamonds,
		ValidDays: line.ValidDays,
		LiveHours: line.LiveHours,
	}
	var text string
	if params.Kind == MessagePerformance {
		text = messaging.BuildPerformanceMessage(perf)
	} else {
		text = messaging.BuildBonusMessage(messaging.BonusMessage{PerformanceMessage: perf, Result: line.Result})
	}

	link, err := messaging.WaLink(phone, text)
	if err != nil {
		return MessageResult{}, err
	}

	result := MessageResult{Text: text, WaLink: link, CanSend: p.sender.Enabled(), Bonus: line}
	if !params.Send {
		return result, nil
	}

	sid, err := p.sender.Send(ctx, phone, text)
	if err != nil {
		return MessageResult{}, err
	}
	result.Sent = true
	result.MessageSID = sid

	p.logger.Info(ctx, "talent message sent")
	return result, nil
}
