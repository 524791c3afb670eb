package update

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/nextword/internal/dispatcher"
	"github.com/Rorical/nextword/internal/eventbus"
	"github.com/Rorical/nextword/internal/models"
)

type fakeSender struct {
	events []eventbus.UIEvent
	err    error
}

func (f *fakeSender) Send(event eventbus.UIEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

var testExamples = []string{"the quick brown", "once upon a"}

func newModel() models.AppModel {
	return models.NewAppModel(500)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSubmitSendsPromptAndNumWords(t *testing.T) {
	m := newModel()
	m.Prompt.SetValue("hello")
	m.NumWords.SetValue("3")
	s := &fakeSender{}

	HandleKeyMsg(&m, DefaultKeyMap(), tea.KeyMsg{Type: tea.KeyCtrlS}, s, testExamples)

	require.Len(t, s.events, 1)
	assert.Equal(t, eventbus.SubmitEvent{Text: "hello", NumWords: "3"}, s.events[0])
}

func TestSubmitAltEnter(t *testing.T) {
	m := newModel()
	s := &fakeSender{}

	HandleKeyMsg(&m, DefaultKeyMap(), tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, s, testExamples)

	require.Len(t, s.events, 1)
	assert.IsType(t, eventbus.SubmitEvent{}, s.events[0])
}

func TestSubmitIgnoredWhileLoading(t *testing.T) {
	m := newModel()
	m.Controls.Loading = true
	s := &fakeSender{}

	HandleKeyMsg(&m, DefaultKeyMap(), tea.KeyMsg{Type: tea.KeyCtrlS}, s, testExamples)

	assert.Empty(t, s.events)
}

func TestTypingSendsPromptChanged(t *testing.T) {
	m := newModel()
	s := &fakeSender{}

	HandleKeyMsg(&m, DefaultKeyMap(), runes("a"), s, testExamples)

	require.Len(t, s.events, 1)
	assert.Equal(t, eventbus.PromptChangedEvent{Text: "a"}, s.events[0])
	assert.Equal(t, "a", m.Prompt.Value())
}

func TestTypingInNumWordsDoesNotTouchPrompt(t *testing.T) {
	m := newModel()
	m.NumWords.SetValue("")
	s := &fakeSender{}
	keys := DefaultKeyMap()

	HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyTab}, s, testExamples)
	assert.Equal(t, models.FieldNumWords, m.Focus)

	HandleKeyMsg(&m, keys, runes("4"), s, testExamples)
	assert.Equal(t, "4", m.NumWords.Value())
	assert.Empty(t, m.Prompt.Value())
	assert.Empty(t, s.events)

	HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyTab}, s, testExamples)
	assert.Equal(t, models.FieldPrompt, m.Focus)
}

func TestExampleShortcut(t *testing.T) {
	m := newModel()
	s := &fakeSender{}
	keys := DefaultKeyMap()

	HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}, Alt: true}, s, testExamples)
	// no third example configured
	HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}, Alt: true}, s, testExamples)

	require.Len(t, s.events, 1)
	assert.Equal(t, eventbus.ExampleSelectedEvent{Text: "once upon a"}, s.events[0])
}

func TestRefreshAndQuit(t *testing.T) {
	m := newModel()
	s := &fakeSender{}
	keys := DefaultKeyMap()

	HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyCtrlR}, s, testExamples)
	require.Len(t, s.events, 1)
	assert.Equal(t, eventbus.RefreshStatusEvent{}, s.events[0])

	cmd := HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyCtrlC}, s, testExamples)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggle(t *testing.T) {
	m := newModel()
	keys := DefaultKeyMap()

	HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyF1}, &fakeSender{}, nil)
	assert.True(t, m.ShowHelp)
	assert.True(t, m.Help.ShowAll)

	HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyF1}, &fakeSender{}, nil)
	assert.False(t, m.ShowHelp)
}

func TestCopy(t *testing.T) {
	var copied string
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	keys := DefaultKeyMap()

	m := newModel()
	HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyCtrlY}, &fakeSender{}, nil)
	assert.Equal(t, "Nothing to copy yet", m.Notice)
	assert.Empty(t, copied)

	m.Panel = models.Panel{Kind: models.PanelResult, Prediction: models.Prediction{Prompt: "hello", Completion: "world"}}
	HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyCtrlY}, &fakeSender{}, nil)
	assert.Equal(t, "hello world", copied)
	assert.Equal(t, "Copied to clipboard", m.Notice)

	writeClipboard = func(string) error { return errors.New("no display") }
	HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyCtrlY}, &fakeSender{}, nil)
	assert.Contains(t, m.Notice, "no display")
}

func TestHandleCoreEvent(t *testing.T) {
	m := newModel()

	HandleCoreEvent(&m, dispatcher.CoreEventMsg{Event: eventbus.StatusEvent{Status: models.Status{Connected: true, Message: "ok"}}})
	assert.True(t, m.Status.Connected)

	cmd := HandleCoreEvent(&m, dispatcher.CoreEventMsg{Event: eventbus.ControlsEvent{Controls: models.Controls{Loading: true}}})
	assert.NotNil(t, cmd, "spinner starts when loading begins")
	cmd = HandleCoreEvent(&m, dispatcher.CoreEventMsg{Event: eventbus.ControlsEvent{Controls: models.Controls{Loading: true}}})
	assert.Nil(t, cmd)

	pred := models.Prediction{Prompt: "a", Completion: "b", Words: []string{"b"}}
	HandleCoreEvent(&m, dispatcher.CoreEventMsg{Event: eventbus.ResultEvent{Prediction: pred}})
	assert.Equal(t, models.Panel{Kind: models.PanelResult, Prediction: pred}, m.Panel)

	HandleCoreEvent(&m, dispatcher.CoreEventMsg{Event: eventbus.ErrorEvent{Message: "boom"}})
	assert.Equal(t, models.Panel{Kind: models.PanelError, Error: "boom"}, m.Panel)

	counter := models.Counter{Used: 12, Limit: 500}
	HandleCoreEvent(&m, dispatcher.CoreEventMsg{Event: eventbus.CounterEvent{Counter: counter}})
	assert.Equal(t, counter, m.Counter)

	m.Focus = models.FieldNumWords
	HandleCoreEvent(&m, dispatcher.CoreEventMsg{Event: eventbus.PromptEvent{Text: "once upon a"}})
	assert.Equal(t, "once upon a", m.Prompt.Value())
	assert.Equal(t, models.FieldPrompt, m.Focus)
}

func TestHandleUpdateWindowSize(t *testing.T) {
	m := newModel()
	HandleUpdate(&m, tea.WindowSizeMsg{Width: 80, Height: 24}, DefaultKeyMap(), &fakeSender{}, nil)
	assert.Equal(t, 80, m.Width)
	assert.Equal(t, 24, m.Height)
}

func TestDroppedEventShowsNotice(t *testing.T) {
	keys := DefaultKeyMap()
	s := &fakeSender{err: eventbus.EventBusError{Operation: "SendToCore", Err: eventbus.ErrQueueFull}}

	m := newModel()
	m.Prompt.SetValue("hello")
	HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyCtrlS}, s, testExamples)
	assert.Contains(t, m.Notice, "Input dropped")

	m = newModel()
	HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyCtrlR}, s, testExamples)
	assert.Contains(t, m.Notice, "Input dropped")

	// a successful send leaves the notice alone
	m = newModel()
	HandleKeyMsg(&m, keys, tea.KeyMsg{Type: tea.KeyCtrlR}, &fakeSender{}, testExamples)
	assert.Empty(t, m.Notice)
}
