package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"transferlist/internal/domain"
)

func TestPublishDeliversInOrder(t *testing.T) {
	b := New(nil)
	defer b.Close()

	got := make(chan string, 3)
	b.Subscribe(EventValueChanged, func(e DomainEvent) {
		got <- e.(ValueChangedEvent).ID
	})

	for _, id := range []string{"a", "b", "c"} {
		b.Publish(ValueChangedEvent{ID: id})
	}

	for _, want := range []string{"a", "b", "c"} {
		select {
		case id := <-got:
			require.Equal(t, want, id)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New(nil)
	defer b.Close()

	removed := make(chan struct{}, 1)
	kept := make(chan struct{}, 1)
	unsubscribe := b.Subscribe(EventInstanceRemoved, func(DomainEvent) { removed <- struct{}{} })
	b.Subscribe(EventInstanceRemoved, func(DomainEvent) { kept <- struct{}{} })
	unsubscribe()

	b.Publish(InstanceRemovedEvent{ID: "x"})

	select {
	case <-kept:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber not called")
	}
	require.Empty(t, removed)
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	b := New(nil)
	defer b.Close()

	done := make(chan struct{})
	b.Subscribe(EventInstanceCreated, func(DomainEvent) { panic("boom") })
	b.Subscribe(EventInstanceCreated, func(DomainEvent) { close(done) })

	b.Publish(InstanceCreatedEvent{ID: "x", Value: domain.Value{}})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second handler not called after panic")
	}
}

func TestPublishAfterCloseIsIgnored(t *testing.T) {
	b := New(nil)
	b.Close()
	require.NotPanics(t, func() {
		b.Publish(InstanceRemovedEvent{ID: "x"})
	})
}
