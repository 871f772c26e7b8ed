package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"shopmate/internal/assistant"
	applog "shopmate/internal/log"
	"shopmate/internal/services"
	"shopmate/internal/session"
	"shopmate/internal/validate"
)

type ChatHandler struct {
	Chat     *services.ChatService
	Sessions *session.Manager
}

type chatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
}

// Send runs one conversation turn. The client posts its transcript view; the
// last user entry is the new utterance, the server-side transcript stays
// authoritative.
func (h *ChatHandler) Send(c *fiber.Ctx) error {
	sid := ensureSID(c)
	sess := h.Sessions.Get(sid)

	var req chatRequest
	if err := c.BodyParser(&req); err != nil || len(req.Messages) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing messages"})
	}
	last := req.Messages[len(req.Messages)-1]
	text, ok := validate.ChatText(last.Text)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "empty message"})
	}

	raw, botMsg, err := h.Chat.Turn(c.Context(), sess, text)
	if err != nil {
		applog.Error(c, "chat.turn.failed", err, nil)
		status := fiber.StatusBadGateway
		if errors.Is(err, assistant.ErrNoCredentials) {
			status = fiber.StatusInternalServerError
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	applog.Info(c, "chat.turn", map[string]any{"chars": len(raw)})
	// message is the display text already in the transcript, including the
	// cart confirmation suffix when suggestions were auto-added.
	return c.JSON(fiber.Map{"response": raw, "message": botMsg.Text})
}

// History returns the session transcript for the chat page.
func (h *ChatHandler) History(c *fiber.Ctx) error {
	sess := h.Sessions.Get(ensureSID(c))
	return c.JSON(fiber.Map{"messages": sess.Messages()})
}
