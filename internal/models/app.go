package models

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

// PanelKind selects what the result area currently shows
type PanelKind int

const (
	PanelEmpty PanelKind = iota
	PanelResult
	PanelError
)

// Panel is the content of the result area
type Panel struct {
	Kind       PanelKind
	Prediction Prediction
	Error      string
}

// Field identifies the focused input
type Field int

const (
	FieldPrompt Field = iota
	FieldNumWords
)

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Prompt   textarea.Model  // Prompt text box
	NumWords textinput.Model // Requested word count
	Spinner  spinner.Model   // Loading indicator on the submit control
	Help     help.Model      // Key binding help

	Status   Status   // Last status pushed by core
	Controls Controls // Submit affordance pushed by core
	Counter  Counter  // Character counter pushed by core
	Panel    Panel    // Result area
	Focus    Field    // Which input receives keystrokes
	ShowHelp bool     // Full key help visible
	Notice   string   // Transient one-line notice (clipboard etc.)
	Width    int      // Terminal width
	Height   int      // Terminal height
}

// NewAppModel builds the initial UI state with the prompt focused.
func NewAppModel(promptLimit int) AppModel {
	prompt := textarea.New()
	prompt.Placeholder = "Start typing a sentence..."
	prompt.CharLimit = promptLimit
	prompt.ShowLineNumbers = false
	prompt.SetHeight(3)
	prompt.Focus()

	numWords := textinput.New()
	numWords.Placeholder = "1"
	numWords.CharLimit = 2
	numWords.Width = 4
	numWords.SetValue("1")

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return AppModel{
		Prompt:   prompt,
		NumWords: numWords,
		Spinner:  spin,
		Help:     help.New(),
		Counter:  Counter{Limit: promptLimit},
		Focus:    FieldPrompt,
	}
}
