package components

import (
	"strings"

	"github.com/Rorical/nextword/internal/core"
	"github.com/Rorical/nextword/internal/models"
	"github.com/Rorical/nextword/ui/styles"
)

// ErrorHints are the static troubleshooting steps under every error.
var ErrorHints = []string{
	"Make sure the prediction server is running (python server.py)",
	"Check if the model is trained (model.h5 file exists)",
	"Try a different text prompt",
	"Ensure the dataset file is available",
}

func RenderPanel(panel models.Panel) string {
	switch panel.Kind {
	case models.PanelResult:
		return RenderResult(panel.Prediction)
	case models.PanelError:
		return RenderError(panel.Error)
	}
	return ""
}

// RenderResult draws a prediction. A missing completion gets a neutral notice.
func RenderResult(p models.Prediction) string {
	if !p.HasCompletion() {
		return styles.NoticeStyle().Render(core.MsgNoPrediction)
	}

	heading := styles.HeadingStyle()
	tags := make([]string, 0, len(p.Words))
	for _, w := range p.Words {
		tags = append(tags, styles.WordTagStyle().Render(w))
	}

	var b strings.Builder
	b.WriteString(heading.Render("Prediction") + "\n")
	b.WriteString(heading.Render("Your text: ") + quote(p.Prompt) + "\n")
	b.WriteString(heading.Render("Predicted completion: ") + "\"" + styles.HighlightStyle().Render(p.Completion) + "\"\n")
	b.WriteString(heading.Render("Complete sentence: ") + quote(p.FullSentence()) + "\n")
	b.WriteString(heading.Render("Individual words: ") + strings.Join(tags, " "))

	return styles.ResultStyle().Render(b.String())
}

// RenderError draws the error panel with the fixed remediation hints.
func RenderError(message string) string {
	heading := styles.HeadingStyle()

	var b strings.Builder
	b.WriteString(heading.Render("Prediction Error") + "\n")
	b.WriteString(heading.Render("Error: ") + message + "\n")
	b.WriteString(heading.Render("Possible solutions:"))
	for _, hint := range ErrorHints {
		b.WriteString("\n  • " + hint)
	}

	return styles.ErrorStyle().Render(b.String())
}

func quote(s string) string {
	return "\"" + s + "\""
}
