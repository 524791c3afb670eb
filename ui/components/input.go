package components

import (
	"strings"

	"github.com/Rorical/nextword/internal/core"
	"github.com/Rorical/nextword/internal/models"
	"github.com/Rorical/nextword/ui/styles"
)

func RenderInput(field string, focused bool, width int) string {
	return styles.InputStyle(width, focused).Render(field)
}

func RenderCounter(counter models.Counter) string {
	return "  " + styles.CounterStyle(counter.Level).Render(counter.Label())
}

// RenderSubmit draws the submit control: a spinner while loading, dimmed when disabled.
func RenderSubmit(controls models.Controls, spinnerView string) string {
	if controls.Loading {
		return styles.ButtonStyle(false).Render(spinnerView + " Predicting...")
	}
	return styles.ButtonStyle(controls.SubmitEnabled).Render("Predict")
}

// RenderHint shows the tooltip of the focused field.
func RenderHint(focus models.Field) string {
	hint := core.Hints["text"]
	if focus == models.FieldNumWords {
		hint = core.Hints["num"]
	}
	return styles.HintStyle().Render(hint + " " + core.Hints["predict"])
}

// RenderExamples lists the preset prompts with their shortcuts.
func RenderExamples(examples []string) string {
	if len(examples) == 0 {
		return ""
	}
	parts := make([]string, 0, len(examples))
	for i, ex := range examples {
		parts = append(parts, "alt+"+string(rune('1'+i))+" "+ex)
	}
	return styles.HintStyle().Render("Examples: " + strings.Join(parts, " · "))
}
