package core

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/Rorical/nextword/internal/models"
)

var (
	ErrEmptyPrompt     = errors.New("empty prompt")
	ErrNotConnected    = errors.New("backend not connected")
	ErrRequestInFlight = errors.New("prediction already in flight")
)

const (
	MsgChecking     = "Checking backend..."
	MsgConnected    = "Backend connected"
	MsgDisconnected = "Backend disconnected - please start the prediction server"
	MsgEmptyPrompt  = "Please enter some text to get predictions."
	MsgNotConnected = "Backend server is not connected. Please start the server first."
	MsgNoPrediction = "No prediction available. Try a different prompt or check if the model is trained."
)

// Backend is the prediction server as seen by the controller.
type Backend interface {
	Health(ctx context.Context) error
	Predict(ctx context.Context, text string, numWords int) (models.Prediction, error)
}

// View renders controller decisions. Implementations must be safe for
// concurrent use: probes and submissions call it from different goroutines.
type View interface {
	RenderStatus(status models.Status)
	RenderControls(controls models.Controls)
	RenderResult(prediction models.Prediction)
	RenderError(message string)
	RenderCounter(counter models.Counter)
	// RenderPrompt replaces the prompt text and focuses the prompt field.
	RenderPrompt(text string)
}

// Controller holds connectivity and request state and decides what the
// view shows for every probe, submission and input change.
type Controller struct {
	backend Backend
	view    View
	logger  *slog.Logger
	state   stateStore

	// renderMu pairs each state change with the renders that follow it,
	// so the last controls rendered always match the current state.
	renderMu sync.Mutex
}

func NewController(backend Backend, view View, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		backend: backend,
		view:    view,
		logger:  logger,
	}
}

func (c *Controller) State() State {
	return c.state.Get()
}

// Init renders the initial screen before the first probe completes.
func (c *Controller) Init(prompt string) {
	st := c.state.Get()
	c.view.RenderStatus(models.Status{Connected: st.Connected, Message: MsgChecking})
	c.view.RenderControls(st.Controls())
	c.UpdateCharCounter(prompt)
}

// ProbeHealth checks the backend once and updates connectivity.
func (c *Controller) ProbeHealth(ctx context.Context) {
	err := c.backend.Health(ctx)
	if ctx.Err() != nil {
		// shutting down; the answer no longer matters
		return
	}

	c.renderMu.Lock()
	was := c.state.Get().Connected
	var st State
	if err == nil {
		st = c.state.Apply(ProbeSucceeded)
		c.view.RenderStatus(models.Status{Connected: true, Message: MsgConnected})
	} else {
		st = c.state.Apply(ProbeFailed)
		c.view.RenderStatus(models.Status{Connected: false, Message: MsgDisconnected})
	}
	c.view.RenderControls(st.Controls())
	c.renderMu.Unlock()

	if was != st.Connected {
		if err != nil {
			c.logger.Warn("backend disconnected", "error", err)
		} else {
			c.logger.Info("backend connected")
		}
	}
}

// Submit validates in and runs at most one prediction at a time.
func (c *Controller) Submit(ctx context.Context, in PromptInput) error {
	if c.state.Get().Requesting {
		return ErrRequestInFlight
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		c.view.RenderError(MsgEmptyPrompt)
		return ErrEmptyPrompt
	}

	c.renderMu.Lock()
	started, ok := c.state.beginRequest()
	if !ok {
		c.renderMu.Unlock()
		if started.Requesting {
			return ErrRequestInFlight
		}
		c.view.RenderError(MsgNotConnected)
		return ErrNotConnected
	}
	c.view.RenderControls(started.Controls())
	c.renderMu.Unlock()
	defer func() {
		c.renderMu.Lock()
		defer c.renderMu.Unlock()
		st := c.state.Apply(RequestFinished)
		c.view.RenderControls(st.Controls())
	}()

	numWords := ParseNumWords(in.NumWords)
	prediction, err := c.backend.Predict(ctx, text, numWords)
	if err != nil {
		c.logger.Warn("prediction failed", "num_words", numWords, "error", err)
		c.view.RenderError(err.Error())
		return err
	}

	prediction.Prompt = text
	c.logger.Info("prediction done", "num_words", numWords, "words", len(prediction.Words))
	c.view.RenderResult(prediction)
	return nil
}

// ApplyExampleText puts a preset prompt into the field.
func (c *Controller) ApplyExampleText(text string) {
	c.view.RenderPrompt(text)
	c.UpdateCharCounter(text)
}

func (c *Controller) UpdateCharCounter(text string) {
	c.view.RenderCounter(CharCounter(text))
}
