package components

import (
	"github.com/mattn/go-runewidth"

	"github.com/Rorical/nextword/internal/models"
	"github.com/Rorical/nextword/ui/styles"
)

func RenderStatus(status models.Status, baseURL string, width int) string {
	content := status.Message
	if baseURL != "" {
		content += "  (" + baseURL + ")"
	}
	// padding takes two cells
	if width > 2 {
		content = runewidth.Truncate(content, width-2, "…")
	}
	return styles.StatusStyle(width, status.Connected).Render(content)
}
