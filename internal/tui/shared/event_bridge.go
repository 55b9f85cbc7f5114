package shared

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/fstour/internal/demo"
)

// eventBufferSize holds a full default run (events plus step output)
// without blocking the runner.
const eventBufferSize = 256

// RunnerEventMsg wraps a demo.Event for use as a tea.Msg.
type RunnerEventMsg struct {
	Event demo.Event
}

// EventBridge adapts runner events to bubble tea messages.
// It implements demo.EventEmitter and provides a channel for TUI consumption.
//
// Sends block while the buffer is full, so no event is lost, until Detach
// is called; after that everything is dropped.
type EventBridge struct {
	eventChan chan tea.Msg
	detached  chan struct{}
	closeOnce sync.Once
	detachOne sync.Once
	mu        sync.Mutex
	closed    bool
}

// NewEventBridge creates a new event bridge.
func NewEventBridge() *EventBridge {
	return &EventBridge{
		eventChan: make(chan tea.Msg, eventBufferSize),
		detached:  make(chan struct{}),
	}
}

// Emit implements demo.EventEmitter.
// It wraps the event in RunnerEventMsg and sends it to the channel.
func (b *EventBridge) Emit(event demo.Event) {
	b.Send(RunnerEventMsg{Event: event})
}

// Send forwards any message to the listener.
func (b *EventBridge) Send(msg tea.Msg) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	select {
	case b.eventChan <- msg:
	case <-b.detached:
	}
}

// Subscribe returns the event channel for receiving events.
func (b *EventBridge) Subscribe() <-chan tea.Msg {
	return b.eventChan
}

// ListenCmd returns a tea.Cmd that blocks until an event is received.
// Use this in Init() or after processing an event to continue listening.
func (b *EventBridge) ListenCmd() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-b.eventChan
		if !ok {
			return BridgeClosedMsg{}
		}

		return msg
	}
}

// Detach tells the bridge nobody is listening any more. Pending and future
// sends are dropped instead of blocking the sender.
func (b *EventBridge) Detach() {
	b.detachOne.Do(func() {
		close(b.detached)
	})
}

// Close closes the event channel. Only the sending side may call it.
func (b *EventBridge) Close() {
	b.closeOnce.Do(func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		b.closed = true
		close(b.eventChan)
	})
}
