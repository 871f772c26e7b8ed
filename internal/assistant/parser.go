package assistant

import (
	"encoding/json"
	"strings"

	"shopmate/internal/domain"
)

// ParsedReply is the structured view of a raw completion payload.
type ParsedReply struct {
	Reply             string
	Language          string
	ShouldAddToCart   bool
	SuggestedProducts []domain.SuggestedProduct
}

type replyPayload struct {
	Reply             string                    `json:"reply"`
	LanguageDetected  string                    `json:"language_detected"`
	ShouldAddToCart   bool                      `json:"should_add_to_cart"`
	SuggestedProducts []domain.SuggestedProduct `json:"suggested_products"`
}

// Parse extracts the reply, cart intent and suggested products from a raw
// completion. Malformed JSON never blocks the conversation: the whole raw
// text becomes the reply with no products and no cart intent.
func Parse(raw string) ParsedReply {
	clean := StripFences(raw)

	var payload replyPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return ParsedReply{Reply: raw}
	}

	return ParsedReply{
		// Drop emphasis markers for the kiosk display.
		Reply:             strings.ReplaceAll(payload.Reply, "**", ""),
		Language:          payload.LanguageDetected,
		ShouldAddToCart:   payload.ShouldAddToCart,
		SuggestedProducts: payload.SuggestedProducts,
	}
}

// StripFences removes markdown code-fence markers around a JSON payload.
// Applying it twice yields the same result.
func StripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
