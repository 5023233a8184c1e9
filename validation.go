package sdprompt

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Validation errors
var (
	ErrEmptyKeyword   = errors.New("keyword cannot be empty")
	ErrKeywordTooLong = errors.New("keyword exceeds maximum length")
	ErrUnknownStyle   = errors.New("unknown style variant")
	ErrEmptyText      = errors.New("text cannot be empty")
)

// MaxKeywordLength is the maximum keyword length in characters.
const MaxKeywordLength = 200

// ValidateKeyword validates a keyword after trimming surrounding whitespace.
func ValidateKeyword(keyword string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return ErrEmptyKeyword
	}
	if n := utf8.RuneCountInString(keyword); n > MaxKeywordLength {
		return fmt.Errorf("%w: %d characters (max %d)", ErrKeywordTooLong, n, MaxKeywordLength)
	}
	return nil
}

// ValidateStyle validates a style variant. An empty style is valid and
// resolves to StyleDefault.
func ValidateStyle(style StyleVariant) error {
	switch style.Resolve() {
	case StyleSD15, StyleIllustrious:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStyle, string(style))
	}
}
