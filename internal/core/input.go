package core

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Rorical/nextword/internal/models"
)

const (
	PromptLimit        = 500
	counterWarnAbove   = 300
	counterDangerAbove = 450
	defaultNumWords    = 1
)

// PromptInput is read fresh from the form on every submission.
type PromptInput struct {
	Text     string
	NumWords string
}

// ParseNumWords reads the leading integer of raw, defaulting to 1.
func ParseNumWords(raw string) int {
	raw = strings.TrimSpace(raw)
	end := 0
	if end < len(raw) && (raw[end] == '-' || raw[end] == '+') {
		end++
	}
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(raw[:end])
	if err != nil {
		return defaultNumWords
	}
	return n
}

// CharCounter computes the counter shown under the prompt.
func CharCounter(text string) models.Counter {
	n := utf8.RuneCountInString(text)
	level := models.CounterNormal
	switch {
	case n > counterDangerAbove:
		level = models.CounterDanger
	case n > counterWarnAbove:
		level = models.CounterWarning
	}
	return models.Counter{Used: n, Limit: PromptLimit, Level: level}
}

// Hints are the per-field tooltips.
var Hints = map[string]string{
	"text":    "Enter 2-5 words for best results. The model works better with meaningful phrases.",
	"num":     "Choose how many words to predict (1-10). More words = longer completion.",
	"predict": "Press ctrl+s (or alt+enter) to generate predictions.",
}
