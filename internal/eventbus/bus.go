package eventbus

import (
	"errors"
	"sync"
	"time"

	"github.com/Rorical/nextword/internal/models"
)

var (
	ErrCircuitOpen = errors.New("circuit breaker is open")
	ErrQueueFull   = errors.New("event queue is full")
)

// UIEvent represents events sent from UI to Core
type UIEvent interface {
	UIEvent()
}

// CoreEvent represents events sent from Core to UI
type CoreEvent interface {
	CoreEvent()
}

// SubmitEvent - UI asks core to run a prediction for the current input
type SubmitEvent struct {
	Text     string
	NumWords string
}

func (e SubmitEvent) UIEvent() {}

// PromptChangedEvent - prompt text was edited
type PromptChangedEvent struct {
	Text string
}

func (e PromptChangedEvent) UIEvent() {}

// ExampleSelectedEvent - user picked one of the preset prompts
type ExampleSelectedEvent struct {
	Text string
}

func (e ExampleSelectedEvent) UIEvent() {}

// RefreshStatusEvent - user asked for an immediate health probe
type RefreshStatusEvent struct{}

func (e RefreshStatusEvent) UIEvent() {}

// StatusEvent - Core pushes a new connectivity status
type StatusEvent struct {
	Status models.Status
}

func (e StatusEvent) CoreEvent() {}

// ControlsEvent - Core pushes the submit affordance state
type ControlsEvent struct {
	Controls models.Controls
}

func (e ControlsEvent) CoreEvent() {}

// ResultEvent - a prediction finished successfully
type ResultEvent struct {
	Prediction models.Prediction
}

func (e ResultEvent) CoreEvent() {}

// ErrorEvent - the error panel should show Message
type ErrorEvent struct {
	Message string
}

func (e ErrorEvent) CoreEvent() {}

// CounterEvent - recomputed character counter
type CounterEvent struct {
	Counter models.Counter
}

func (e CounterEvent) CoreEvent() {}

// PromptEvent - core replaces the prompt text and focuses the field
type PromptEvent struct {
	Text string
}

func (e PromptEvent) CoreEvent() {}

// EventBusError represents errors in event processing
type EventBusError struct {
	Operation string
	Err       error
	Timestamp time.Time
}

func (e EventBusError) Error() string {
	return e.Operation + ": " + e.Err.Error()
}

func (e EventBusError) Unwrap() error {
	return e.Err
}

// CircuitBreakerState represents the state of circuit breaker
type CircuitBreakerState int

const (
	CircuitClosed CircuitBreakerState = iota
	CircuitOpen
	CircuitHalfOpen
)

// CircuitBreaker stops delivery after maxFailures consecutive failures
// until resetTimeout has elapsed.
type CircuitBreaker struct {
	mu              sync.Mutex
	maxFailures     int
	resetTimeout    time.Duration
	failureCount    int
	lastFailureTime time.Time
	state           CircuitBreakerState
	now             func() time.Time
}

func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		state:        CircuitClosed,
		now:          time.Now,
	}
}

func (cb *CircuitBreaker) IsOpen() bool {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == CircuitOpen && cb.now().Sub(cb.lastFailureTime) > cb.resetTimeout {
		cb.state = CircuitHalfOpen
	}
	return cb.state == CircuitOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount = 0
	cb.state = CircuitClosed
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.failureCount++
	cb.lastFailureTime = cb.now()
	if cb.failureCount >= cb.maxFailures {
		cb.state = CircuitOpen
	}
}

func (cb *CircuitBreaker) State() CircuitBreakerState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// EventBus handles communication between UI and Core with circuit breaker
type EventBus struct {
	uiToCore       chan UIEvent
	coreToUI       chan CoreEvent
	errorCallback  func(EventBusError)
	circuitBreaker *CircuitBreaker
	closeOnce      sync.Once
}

func NewEventBus() *EventBus {
	return NewEventBusWithSize(100)
}

func NewEventBusWithSize(size int) *EventBus {
	return &EventBus{
		uiToCore:       make(chan UIEvent, size),
		coreToUI:       make(chan CoreEvent, size),
		circuitBreaker: NewCircuitBreaker(5, 30*time.Second),
	}
}

// SetErrorCallback must be called before the bus is used.
func (eb *EventBus) SetErrorCallback(callback func(EventBusError)) {
	eb.errorCallback = callback
}

func (eb *EventBus) reportError(operation string, err error) error {
	busError := EventBusError{
		Operation: operation,
		Err:       err,
		Timestamp: time.Now(),
	}

	eb.circuitBreaker.RecordFailure()

	if eb.errorCallback != nil {
		eb.errorCallback(busError)
	}
	return busError
}

func (eb *EventBus) SendToCore(event UIEvent) error {
	if eb.circuitBreaker.IsOpen() {
		return eb.reportError("SendToCore", ErrCircuitOpen)
	}

	select {
	case eb.uiToCore <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		return eb.reportError("SendToCore", ErrQueueFull)
	}
}

func (eb *EventBus) SendToUI(event CoreEvent) error {
	if eb.circuitBreaker.IsOpen() {
		return eb.reportError("SendToUI", ErrCircuitOpen)
	}

	select {
	case eb.coreToUI <- event:
		eb.circuitBreaker.RecordSuccess()
		return nil
	default:
		return eb.reportError("SendToUI", ErrQueueFull)
	}
}

func (eb *EventBus) UIToCore() <-chan UIEvent {
	return eb.uiToCore
}

func (eb *EventBus) CoreToUI() <-chan CoreEvent {
	return eb.coreToUI
}

func (eb *EventBus) GetCircuitBreakerState() CircuitBreakerState {
	return eb.circuitBreaker.State()
}

// Close closes both channels. Senders must be stopped first.
func (eb *EventBus) Close() {
	eb.closeOnce.Do(func() {
		close(eb.uiToCore)
		close(eb.coreToUI)
	})
}
