package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// EAN/UPC style digit runs as used by the scan simulator catalog
	reBarcode = regexp.MustCompile(`^[0-9]{6,14}$`)
	reID      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reAnswer  = regexp.MustCompile(`^[a-z0-9_]{1,32}$`)
)

// Barcode validates a scanned or simulated barcode value.
func Barcode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reBarcode.MatchString(s)
}

// ID validates a simple resource identifier (product/cart-item ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Answer validates a survey choice value (machine tokens like "smart_list").
func Answer(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reAnswer.MatchString(s)
}

// Feedback trims free-text survey input and caps its length.
func Feedback(s string) string {
	return truncate(strings.TrimSpace(s), 2000)
}

// ChatText trims a chat message and caps its length; empty means reject.
func ChatText(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return truncate(s, 2000), true
}

// truncate caps s at max bytes without splitting a multi-byte rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
