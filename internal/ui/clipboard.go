package ui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when no system clipboard can be used.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// clipboardWrite is replaced in tests.
var clipboardWrite = func(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnavailable
	}
	return clipboard.WriteAll(text)
}

// Copy puts text on the system clipboard.
func Copy(text string) error {
	if err := clipboardWrite(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// CopyCard copies the prompt of the n-th card, counting from 1.
func CopyCard(res *Result, n int) (string, error) {
	if n < 1 || n > len(res.Cards) {
		return "", fmt.Errorf("card %d out of range 1..%d", n, len(res.Cards))
	}
	prompt := res.Cards[n-1].Prompt
	if err := Copy(prompt); err != nil {
		return "", err
	}
	return prompt, nil
}
