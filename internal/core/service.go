package core

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Rorical/nextword/internal/eventbus"
	"github.com/Rorical/nextword/internal/models"
)

// PredictService connects the controller to the UI through the event bus
// and owns the health polling schedule.
type PredictService struct {
	controller *Controller
	poller     *Poller
	eventBus   *eventbus.EventBus
	logger     *slog.Logger
	ctx        context.Context
	cancel     context.CancelFunc
	workers    sync.WaitGroup
	loopDone   chan struct{}
	started    atomic.Bool
}

func NewPredictService(backend Backend, eb *eventbus.EventBus, pollInterval time.Duration, logger *slog.Logger) *PredictService {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())

	controller := NewController(backend, &busView{eventBus: eb, logger: logger}, logger)

	return &PredictService{
		controller: controller,
		poller:     NewPoller(pollInterval, controller.ProbeHealth),
		eventBus:   eb,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
		loopDone:   make(chan struct{}),
	}
}

// Start renders the initial state, begins polling and runs the event loop.
func (ps *PredictService) Start() {
	if !ps.started.CompareAndSwap(false, true) {
		return
	}
	ps.controller.Init("")
	ps.poller.Start(ps.ctx)
	go ps.eventLoop()
}

// Stop cancels in-flight work and waits for every goroutine the service started.
func (ps *PredictService) Stop() {
	ps.cancel()
	ps.poller.Stop()
	if ps.started.Load() {
		<-ps.loopDone
	}
	ps.workers.Wait()
}

func (ps *PredictService) Controller() *Controller {
	return ps.controller
}

func (ps *PredictService) eventLoop() {
	defer close(ps.loopDone)
	for {
		select {
		case <-ps.ctx.Done():
			return
		case event, ok := <-ps.eventBus.UIToCore():
			if !ok {
				return
			}
			ps.handleUIEvent(event)
		}
	}
}

func (ps *PredictService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.SubmitEvent:
		ps.goWork(func(ctx context.Context) {
			if err := ps.controller.Submit(ctx, PromptInput{Text: e.Text, NumWords: e.NumWords}); err != nil {
				ps.logger.Debug("submit not completed", "error", err)
			}
		})
	case eventbus.RefreshStatusEvent:
		ps.goWork(ps.controller.ProbeHealth)
	case eventbus.PromptChangedEvent:
		ps.controller.UpdateCharCounter(e.Text)
	case eventbus.ExampleSelectedEvent:
		ps.controller.ApplyExampleText(e.Text)
	default:
		ps.logger.Warn("unhandled ui event", "event", event)
	}
}

// goWork keeps network calls off the event loop so input keeps flowing.
func (ps *PredictService) goWork(fn func(ctx context.Context)) {
	ps.workers.Add(1)
	go func() {
		defer ps.workers.Done()
		fn(ps.ctx)
	}()
}

// busView forwards controller renders to the UI as core events.
type busView struct {
	eventBus *eventbus.EventBus
	logger   *slog.Logger
}

func (v *busView) send(ev eventbus.CoreEvent) {
	if err := v.eventBus.SendToUI(ev); err != nil {
		v.logger.Error("error sending event to UI", "event", ev, "error", err)
	}
}

func (v *busView) RenderStatus(status models.Status) {
	v.send(eventbus.StatusEvent{Status: status})
}

func (v *busView) RenderControls(controls models.Controls) {
	v.send(eventbus.ControlsEvent{Controls: controls})
}

func (v *busView) RenderResult(prediction models.Prediction) {
	v.send(eventbus.ResultEvent{Prediction: prediction})
}

func (v *busView) RenderError(message string) {
	v.send(eventbus.ErrorEvent{Message: message})
}

func (v *busView) RenderCounter(counter models.Counter) {
	v.send(eventbus.CounterEvent{Counter: counter})
}

func (v *busView) RenderPrompt(text string) {
	v.send(eventbus.PromptEvent{Text: text})
}
