package core

import (
	"context"
	"sync"
	"time"
)

// Poller runs task once at Start and then on every tick until Stop.
// Runs are independent: a slow run does not delay or skip the next tick.
type Poller struct {
	interval time.Duration
	task     func(ctx context.Context)

	mu      sync.Mutex
	cancel  context.CancelFunc
	running sync.WaitGroup
}

func NewPoller(interval time.Duration, task func(ctx context.Context)) *Poller {
	return &Poller{interval: interval, task: task}
}

func (p *Poller) Start(parent context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(parent)
	p.cancel = cancel

	p.running.Add(1)
	go p.loop(ctx)
}

func (p *Poller) loop(ctx context.Context) {
	defer p.running.Done()

	p.run(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.run(ctx)
		}
	}
}

func (p *Poller) run(ctx context.Context) {
	p.running.Add(1)
	go func() {
		defer p.running.Done()
		p.task(ctx)
	}()
}

// Stop cancels the schedule and waits for in-flight runs to return.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	p.running.Wait()
}
