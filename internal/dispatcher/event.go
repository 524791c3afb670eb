package dispatcher

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/nextword/internal/eventbus"
)

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// EventDispatcher handles routing events between core and UI
type EventDispatcher struct {
	eventBus *eventbus.EventBus
	logger   *slog.Logger
}

func NewEventDispatcher(eventBus *eventbus.EventBus, logger *slog.Logger) *EventDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &EventDispatcher{
		eventBus: eventBus,
		logger:   logger,
	}
}

// ListenForCoreEvents waits for the next core event. The UI must issue it
// again after every CoreEventMsg to keep listening.
func (ed *EventDispatcher) ListenForCoreEvents() tea.Cmd {
	return func() tea.Msg {
		event, ok := <-ed.eventBus.CoreToUI()
		if !ok {
			return nil
		}
		return CoreEventMsg{Event: event}
	}
}

// Send forwards a UI event to core; failures are logged and reported.
func (ed *EventDispatcher) Send(event eventbus.UIEvent) error {
	if err := ed.eventBus.SendToCore(event); err != nil {
		ed.logger.Error("error sending event to core", "event", event, "error", err)
		return err
	}
	return nil
}

func (ed *EventDispatcher) GetEventBus() *eventbus.EventBus {
	return ed.eventBus
}
