package shared_test

import (
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/fstour/internal/demo"
	"github.com/joe/fstour/internal/tui/shared"
)

// TestEventBridge_ImplementsEventEmitter verifies the bridge implements EventEmitter.
func TestEventBridge_ImplementsEventEmitter(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()
	defer bridge.Close()

	var emitter demo.EventEmitter = bridge
	g.Expect(emitter).ToNot(BeNil())
}

// TestEventBridge_EmitSendsToChan verifies events are sent to the channel.
func TestEventBridge_EmitSendsToChan(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()
	defer bridge.Close()

	eventChan := bridge.Subscribe()

	bridge.Emit(demo.StepStarted{Index: 0, Total: 14, Name: "path"})

	select {
	case msg := <-eventChan:
		eventMsg, ok := msg.(shared.RunnerEventMsg)
		g.Expect(ok).To(BeTrue(), "Expected RunnerEventMsg")

		started, ok := eventMsg.Event.(demo.StepStarted)
		g.Expect(ok).To(BeTrue(), "Expected StepStarted event")
		g.Expect(started.Name).To(Equal("path"))
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Timed out waiting for event")
	}
}

// TestEventBridge_MultipleEvents verifies messages are received in order.
func TestEventBridge_MultipleEvents(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()
	defer bridge.Close()

	eventChan := bridge.Subscribe()

	bridge.Emit(demo.StepStarted{Name: "mkdir"})
	bridge.Send(shared.OutputLineMsg{Level: "info", Text: "created out/a"})
	bridge.Emit(demo.StepSucceeded{Name: "mkdir"})

	msgs := make([]any, 0, 3)
	for i := range 3 {
		select {
		case msg := <-eventChan:
			msgs = append(msgs, msg)
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("Timed out waiting for message %d", i)
		}
	}

	g.Expect(msgs[0]).To(Equal(shared.RunnerEventMsg{Event: demo.StepStarted{Name: "mkdir"}}))
	g.Expect(msgs[1]).To(Equal(shared.OutputLineMsg{Level: "info", Text: "created out/a"}))
	g.Expect(msgs[2]).To(Equal(shared.RunnerEventMsg{Event: demo.StepSucceeded{Name: "mkdir"}}))
}

// TestEventBridge_CloseStopsChannel verifies Close stops the channel and
// later sends are ignored.
func TestEventBridge_CloseStopsChannel(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()
	eventChan := bridge.Subscribe()

	bridge.Close()
	bridge.Close()
	bridge.Emit(demo.StepStarted{Name: "late"})

	_, open := <-eventChan
	g.Expect(open).To(BeFalse(), "Channel should be closed")
}

// TestEventBridge_ListenCmd verifies the listen command works with bubble tea.
func TestEventBridge_ListenCmd(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()

	cmd := bridge.ListenCmd()
	g.Expect(cmd).ToNot(BeNil())

	go func() {
		time.Sleep(10 * time.Millisecond)
		bridge.Emit(demo.StepStarted{Name: "path"})
		bridge.Close()
	}()

	msg := cmd()
	g.Expect(msg).To(BeAssignableToTypeOf(shared.RunnerEventMsg{}))

	g.Expect(cmd()).To(Equal(shared.BridgeClosedMsg{}))
}

// TestEventBridge_DetachUnblocksSender verifies a sender blocked on a full
// buffer is released once the listener detaches.
func TestEventBridge_DetachUnblocksSender(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	bridge := shared.NewEventBridge()
	done := make(chan struct{})

	go func() {
		defer close(done)

		for range 1000 {
			bridge.Emit(demo.StepSkipped{Name: "rm", Reason: "canceled"})
		}

		bridge.Close()
	}()

	g.Consistently(done, 50*time.Millisecond).ShouldNot(BeClosed())

	bridge.Detach()

	g.Eventually(done, time.Second).Should(BeClosed())
}
