package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/nextword/internal/dispatcher"
	"github.com/Rorical/nextword/internal/models"
	"github.com/Rorical/nextword/internal/update"
	"github.com/Rorical/nextword/ui/components"
	"github.com/Rorical/nextword/ui/styles"
)

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.dispatcher.ListenForCoreEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(dispatcher.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForCoreEvents())
	}

	cmd := update.HandleUpdate(&m.appModel, msg, m.keys, m.dispatcher, m.examples)
	return m, cmd
}

func (m *AppModel) View() string {
	am := &m.appModel
	var b strings.Builder

	b.WriteString(styles.TitleStyle().Render("Next Word Prediction"))
	b.WriteString("\n")
	b.WriteString(components.RenderInput(am.Prompt.View(), am.Focus == models.FieldPrompt, am.Width))
	b.WriteString("\n")
	b.WriteString(components.RenderCounter(am.Counter))
	b.WriteString("\n")
	b.WriteString(components.RenderInput("Words: "+am.NumWords.View(), am.Focus == models.FieldNumWords, am.Width/2))
	b.WriteString(components.RenderSubmit(am.Controls, am.Spinner.View()))
	b.WriteString("\n")
	b.WriteString(components.RenderHint(am.Focus))
	b.WriteString("\n")
	if examples := components.RenderExamples(m.examples); examples != "" {
		b.WriteString(examples)
		b.WriteString("\n")
	}
	if panel := components.RenderPanel(am.Panel); panel != "" {
		b.WriteString("\n")
		b.WriteString(panel)
		b.WriteString("\n")
	}
	if am.Notice != "" {
		b.WriteString(styles.NoticeStyle().Render(am.Notice))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(am.Help.View(m.keys))
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(am.Status, m.baseURL, am.Width))

	return b.String()
}
