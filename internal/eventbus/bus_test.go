package eventbus

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/nextword/internal/models"
)

func TestSendToCoreDelivers(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	require.NoError(t, eb.SendToCore(SubmitEvent{Text: "hello", NumWords: "2"}))

	got := <-eb.UIToCore()
	assert.Equal(t, SubmitEvent{Text: "hello", NumWords: "2"}, got)
}

func TestSendToUIDelivers(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	ev := StatusEvent{Status: models.Status{Connected: true, Message: "ok"}}
	require.NoError(t, eb.SendToUI(ev))

	assert.Equal(t, ev, <-eb.CoreToUI())
}

func TestFullQueueReportsError(t *testing.T) {
	eb := NewEventBusWithSize(1)
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(e EventBusError) { reported = append(reported, e) })

	require.NoError(t, eb.SendToUI(CounterEvent{}))
	err := eb.SendToUI(CounterEvent{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrQueueFull))
	require.Len(t, reported, 1)
	assert.Equal(t, "SendToUI", reported[0].Operation)
}

func TestCircuitOpensAfterRepeatedFailures(t *testing.T) {
	eb := NewEventBusWithSize(0)
	defer eb.Close()

	for i := 0; i < 5; i++ {
		assert.ErrorIs(t, eb.SendToCore(RefreshStatusEvent{}), ErrQueueFull)
	}

	assert.Equal(t, CircuitOpen, eb.GetCircuitBreakerState())
	assert.ErrorIs(t, eb.SendToCore(RefreshStatusEvent{}), ErrCircuitOpen)
}

func TestCircuitBreakerHalfOpensAfterTimeout(t *testing.T) {
	now := time.Unix(1000, 0)
	cb := NewCircuitBreaker(2, time.Minute)
	cb.now = func() time.Time { return now }

	cb.RecordFailure()
	assert.False(t, cb.IsOpen())
	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	now = now.Add(2 * time.Minute)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, CircuitHalfOpen, cb.State())

	cb.RecordSuccess()
	assert.Equal(t, CircuitClosed, cb.State())
}

func TestCloseIsIdempotent(t *testing.T) {
	eb := NewEventBus()
	eb.Close()
	assert.NotPanics(t, eb.Close)
}
