package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopmate/internal/assistant"
	"shopmate/internal/domain"
	"shopmate/internal/session"
)

// cartConfirmation is appended to the reply when suggestions were auto-added.
const cartConfirmation = "\n\n✅ Has been added to cart."

// Completer is the orchestrator boundary; swapped for a stub in tests.
type Completer interface {
	Complete(ctx context.Context, transcript []domain.Message) (string, error)
}

// ChatService runs one conversation turn: append the user message, obtain a
// completion, parse it, apply the cart side effect, append the bot message.
type ChatService struct {
	Orc Completer
}

func NewChatService(orc Completer) *ChatService { return &ChatService{Orc: orc} }

// Turn handles a user utterance and returns the raw completion payload along
// with the bot message appended to the transcript. On orchestrator failure the
// user message stays in the transcript and the error is surfaced to the caller.
func (s *ChatService) Turn(ctx context.Context, sess *session.Session, userText string) (string, domain.Message, error) {
	sess.Append(domain.Message{
		ID:        uuid.NewString(),
		Text:      userText,
		Sender:    domain.SenderUser,
		Timestamp: time.Now(),
	})

	raw, err := s.Orc.Complete(ctx, sess.Messages())
	if err != nil {
		return "", domain.Message{}, err
	}

	parsed := assistant.Parse(raw)
	reply := parsed.Reply

	if parsed.ShouldAddToCart && len(parsed.SuggestedProducts) > 0 {
		for _, p := range parsed.SuggestedProducts {
			category := p.Category
			if category == "" {
				category = "General"
			}
			// Price forced to zero: the no-price rule holds even if the model
			// leaked a price-like field.
			sess.AddToCart(domain.Product{
				ID:       uuid.NewString(),
				Name:     p.Name,
				Category: category,
				Price:    0,
			})
		}
		reply += cartConfirmation
	}

	if strings.TrimSpace(reply) == "" {
		reply = "I'm listening..."
	}

	botMsg := domain.Message{
		ID:                uuid.NewString(),
		Text:              reply,
		Sender:            domain.SenderBot,
		Timestamp:         time.Now(),
		SuggestedProducts: parsed.SuggestedProducts,
	}
	sess.Append(botMsg)
	return raw, botMsg, nil
}
