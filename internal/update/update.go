package update

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/nextword/internal/dispatcher"
	"github.com/Rorical/nextword/internal/models"
)

func HandleUpdate(appModel *models.AppModel, msg tea.Msg, keys KeyMap, sender Sender, examples []string) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(appModel, keys, msg, sender, examples)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case spinner.TickMsg:
		return HandleSpinnerTick(appModel, msg)
	case dispatcher.CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	}
	// cursor blink and similar component messages
	return forwardToFocused(appModel, msg, sender)
}
