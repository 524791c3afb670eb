package update

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/nextword/internal/dispatcher"
	"github.com/Rorical/nextword/internal/eventbus"
	"github.com/Rorical/nextword/internal/models"
)

// Sender delivers UI events to core.
type Sender interface {
	Send(event eventbus.UIEvent) error
}

// For mocking in tests
var writeClipboard = clipboard.WriteAll

// HandleKeyMsg routes a key press to a UI event or to the focused input.
func HandleKeyMsg(appModel *models.AppModel, keys KeyMap, keyMsg tea.KeyMsg, sender Sender, examples []string) tea.Cmd {
	switch {
	case key.Matches(keyMsg, keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, keys.Submit):
		// the control is disabled while a prediction is in flight
		if appModel.Controls.Loading {
			return nil
		}
		appModel.Notice = ""
		send(appModel, sender, eventbus.SubmitEvent{
			Text:     appModel.Prompt.Value(),
			NumWords: appModel.NumWords.Value(),
		})
		return nil
	case key.Matches(keyMsg, keys.NextField):
		return toggleFocus(appModel)
	case key.Matches(keyMsg, keys.Refresh):
		send(appModel, sender, eventbus.RefreshStatusEvent{})
		return nil
	case key.Matches(keyMsg, keys.Copy):
		copyPrediction(appModel)
		return nil
	case key.Matches(keyMsg, keys.Help):
		appModel.ShowHelp = !appModel.ShowHelp
		appModel.Help.ShowAll = appModel.ShowHelp
		return nil
	}

	for i, binding := range keys.Examples {
		if key.Matches(keyMsg, binding) {
			if i < len(examples) {
				send(appModel, sender, eventbus.ExampleSelectedEvent{Text: examples[i]})
			}
			return nil
		}
	}

	return forwardToFocused(appModel, keyMsg, sender)
}

// send reports a dropped event in the notice line so the key press is not lost silently.
func send(appModel *models.AppModel, sender Sender, event eventbus.UIEvent) {
	if err := sender.Send(event); err != nil {
		appModel.Notice = "Input dropped, try again: " + err.Error()
	}
}

// forwardToFocused lets the focused input consume msg and reports prompt edits.
func forwardToFocused(appModel *models.AppModel, msg tea.Msg, sender Sender) tea.Cmd {
	var cmd tea.Cmd
	if appModel.Focus == models.FieldNumWords {
		appModel.NumWords, cmd = appModel.NumWords.Update(msg)
		return cmd
	}

	before := appModel.Prompt.Value()
	appModel.Prompt, cmd = appModel.Prompt.Update(msg)
	if after := appModel.Prompt.Value(); after != before {
		send(appModel, sender, eventbus.PromptChangedEvent{Text: after})
	}
	return cmd
}

func toggleFocus(appModel *models.AppModel) tea.Cmd {
	if appModel.Focus == models.FieldPrompt {
		return focusField(appModel, models.FieldNumWords)
	}
	return focusField(appModel, models.FieldPrompt)
}

func focusField(appModel *models.AppModel, field models.Field) tea.Cmd {
	appModel.Focus = field
	if field == models.FieldNumWords {
		appModel.Prompt.Blur()
		return appModel.NumWords.Focus()
	}
	appModel.NumWords.Blur()
	return appModel.Prompt.Focus()
}

func copyPrediction(appModel *models.AppModel) {
	if appModel.Panel.Kind != models.PanelResult || !appModel.Panel.Prediction.HasCompletion() {
		appModel.Notice = "Nothing to copy yet"
		return
	}
	if err := writeClipboard(appModel.Panel.Prediction.FullSentence()); err != nil {
		appModel.Notice = "Clipboard unavailable: " + err.Error()
		return
	}
	appModel.Notice = "Copied to clipboard"
}

// HandleCoreEvent applies what core rendered to the UI state
func HandleCoreEvent(appModel *models.AppModel, msg dispatcher.CoreEventMsg) tea.Cmd {
	switch event := msg.Event.(type) {
	case eventbus.StatusEvent:
		appModel.Status = event.Status
	case eventbus.ControlsEvent:
		wasLoading := appModel.Controls.Loading
		appModel.Controls = event.Controls
		if event.Controls.Loading && !wasLoading {
			return appModel.Spinner.Tick
		}
	case eventbus.ResultEvent:
		appModel.Panel = models.Panel{Kind: models.PanelResult, Prediction: event.Prediction}
	case eventbus.ErrorEvent:
		appModel.Panel = models.Panel{Kind: models.PanelError, Error: event.Message}
	case eventbus.CounterEvent:
		appModel.Counter = event.Counter
	case eventbus.PromptEvent:
		appModel.Prompt.SetValue(event.Text)
		return focusField(appModel, models.FieldPrompt)
	}
	return nil
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
	if sizeMsg.Width > 8 {
		appModel.Prompt.SetWidth(sizeMsg.Width - 8)
	}
	appModel.Help.Width = sizeMsg.Width
}

// HandleSpinnerTick animates the loading indicator only while loading.
func HandleSpinnerTick(appModel *models.AppModel, tick spinner.TickMsg) tea.Cmd {
	if !appModel.Controls.Loading {
		return nil
	}
	var cmd tea.Cmd
	appModel.Spinner, cmd = appModel.Spinner.Update(tick)
	return cmd
}
