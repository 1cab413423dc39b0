package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func TestStubDeliversSubscribedRoomOnly(t *testing.T) {
	t.Parallel()

	stub := NewStub()
	require.NoError(t, stub.Subscribe("r-1"))

	stub.Emit(Event{Type: EventParticipantJoined, RoomID: "r-2", UserID: "u9"})
	stub.Emit(Event{Type: EventMatchFound, RoomID: "r-1", MovieID: 603})

	got := receive(t, stub.Events())
	assert.Equal(t, EventMatchFound, got.Type)
	assert.Equal(t, "r-1", got.RoomID)

	select {
	case e := <-stub.Events():
		t.Fatalf("unexpected event: %+v", e)
	default:
	}
}

func TestStubSubscribeIsIdempotent(t *testing.T) {
	t.Parallel()

	stub := NewStub()
	require.NoError(t, stub.Subscribe("r-1"))
	require.NoError(t, stub.Subscribe("r-1"))

	stub.Emit(Event{Type: EventParticipantReady, RoomID: "r-1", UserID: "u1"})

	// One subscription, one delivery.
	receive(t, stub.Events())
	select {
	case e := <-stub.Events():
		t.Fatalf("duplicate event: %+v", e)
	default:
	}
}

func TestStubUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()

	stub := NewStub()
	require.NoError(t, stub.Subscribe("r-1"))
	stub.Unsubscribe("r-1")

	stub.Emit(Event{Type: EventParticipantLeft, RoomID: "r-1", UserID: "u1"})

	select {
	case e := <-stub.Events():
		t.Fatalf("unexpected event: %+v", e)
	default:
	}
}

func TestStubFullBufferDropsInsteadOfBlocking(t *testing.T) {
	t.Parallel()

	stub := NewStub()
	require.NoError(t, stub.Subscribe("r-1"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			stub.Emit(Event{Type: EventParticipantJoined, RoomID: "r-1"})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("emitter blocked on a full buffer")
	}
}
