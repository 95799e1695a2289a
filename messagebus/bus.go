package messagebus

import (
	"context"
	"sync"
	"time"
)

// Bus is a bounded, thread-safe FIFO of Messages. Push never blocks: once
// the bus is full the oldest message is dropped to make room, matching
// spec's "oldest dropped when full" bound. Pop blocks until a message is
// available or the supplied context is done.
//
// A Bus is owned by exactly one Essentials/System instance; tests that
// want independent engines in one process construct independent Buses.
type Bus struct {
	mu          sync.Mutex
	notEmpty    chan struct{}
	items       []Message
	capacity    int
	dropped     uint64
	name        string
	subscribers []func(Message)
}

// Subscribe registers fn to be called with every message pushed from this
// point on, in addition to the message still being queued for Pop. Used
// to tee diagnostics to an external sink (MQTTSink) without competing
// with callers draining the bus through PopMessage. fn must not block.
func (b *Bus) Subscribe(fn func(Message)) {
	b.mu.Lock()
	b.subscribers = append(b.subscribers, fn)
	b.mu.Unlock()
}

// New creates a Bus with room for capacity messages.
func New(capacity int, name string) *Bus {
	if capacity <= 0 {
		capacity = 256
	}
	return &Bus{
		notEmpty: make(chan struct{}, 1),
		capacity: capacity,
		name:     name,
	}
}

// Push enqueues msg, dropping the oldest queued message first if the bus
// is already at capacity. It never blocks.
func (b *Bus) Push(msg Message) {
	if msg.Time.IsZero() {
		msg.Time = time.Now()
	}
	b.mu.Lock()
	if len(b.items) >= b.capacity {
		b.items = b.items[1:]
		b.dropped++
		messagesDropped.WithLabelValues(b.name).Inc()
	}
	b.items = append(b.items, msg)
	messagesEnqueued.WithLabelValues(b.name, msg.Severity.String()).Inc()
	subs := b.subscribers
	b.mu.Unlock()

	select {
	case b.notEmpty <- struct{}{}:
	default:
	}

	for _, fn := range subs {
		fn(msg)
	}
}

// Pop blocks until a message is available, returning it along with true;
// it returns (Message{}, false) if ctx is canceled first.
func (b *Bus) Pop(ctx context.Context) (Message, bool) {
	for {
		if msg, ok := b.tryPop(); ok {
			return msg, true
		}
		select {
		case <-b.notEmpty:
			continue
		case <-ctx.Done():
			return Message{}, false
		}
	}
}

// TryPop returns the oldest message without blocking, reporting false if
// the bus is currently empty.
func (b *Bus) TryPop() (Message, bool) {
	return b.tryPop()
}

func (b *Bus) tryPop() (Message, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.items) == 0 {
		return Message{}, false
	}
	msg := b.items[0]
	b.items = b.items[1:]
	return msg, true
}

// Len returns the number of currently queued messages.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Dropped returns the number of messages ever discarded for capacity.
func (b *Bus) Dropped() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dropped
}

// Info, Warning, ErrorMsg and Debug are convenience wrappers that push a
// Message of the given severity carrying tag and text as given.
func (b *Bus) push(sev Severity, tag, text string) {
	b.Push(Message{Severity: sev, Text: text, Tag: tag})
}

func (b *Bus) Info(tag, text string)    { b.push(Info, tag, text) }
func (b *Bus) Warning(tag, text string) { b.push(Warning, tag, text) }
func (b *Bus) ErrorMsg(tag, text string) { b.push(Error, tag, text) }
func (b *Bus) Debug(tag, text string)   { b.push(Debug, tag, text) }
