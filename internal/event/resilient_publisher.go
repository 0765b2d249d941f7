package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Bouquet_Go/internal/logger"
)

type retryEntry struct {
	event   Event
	attempt int
	lastErr error
}

// ResilientPublisher wraps a Bus with background retries. An event whose first publish
// fails is queued and retried with exponential backoff; when retries run out, or the
// queue is full, it is written to the dead-letter file.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter
	shutdown   chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup
}

// NewResilientPublisher starts a publisher with its retry worker
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dl, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}
	p.wg.Add(1)
	go p.retryWorker()
	return p, nil
}

// PublishWithRetry publishes synchronously and hands failures to the retry worker. It
// never returns an error: callers have already committed the state the event describes.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := p.bus.Publish(ctx, evt)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	p.enqueue(retryEntry{event: evt, attempt: 1, lastErr: err})
}

// PublishAll publishes events in order
func (p *ResilientPublisher) PublishAll(ctx context.Context, events []Event) {
	for _, evt := range events {
		p.PublishWithRetry(ctx, evt)
	}
}

func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		p.writeDeadLetter(entry)
	}
}

func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()
	for {
		select {
		case entry := <-p.retryQueue:
			p.retry(entry)
		case <-p.shutdown:
			p.drain()
			return
		}
	}
}

func (p *ResilientPublisher) retry(entry retryEntry) {
	for entry.attempt <= p.maxRetries {
		select {
		case <-time.After(CalculateRetryDelay(p.retryDelay, entry.attempt)):
		case <-p.shutdown:
			// one last try without waiting
			if err := p.bus.Publish(context.Background(), entry.event); err != nil {
				entry.lastErr = err
				p.writeDeadLetter(entry)
			}
			return
		}

		err := p.bus.Publish(context.Background(), entry.event)
		if err == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", entry.event.Type, "attempt", entry.attempt)
			return
		}
		entry.lastErr = err
		logger.Warn(LogMsgEventRetryFailed, "event_type", entry.event.Type, "attempt", entry.attempt, "error", err)
		entry.attempt++
	}

	logger.Warn(LogMsgEventRetryExhausted, "event_type", entry.event.Type)
	p.writeDeadLetter(entry)
}

func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			drained++
			if err := p.bus.Publish(context.Background(), entry.event); err != nil {
				entry.lastErr = err
				p.writeDeadLetter(entry)
			}
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(entry retryEntry) {
	if err := p.deadLetter.Write(entry.event, entry.attempt, entry.lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", entry.event.Type, "error", err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// Shutdown stops the retry worker after draining the queue
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.closeOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
