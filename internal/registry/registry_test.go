package registry

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transferlist/internal/domain"
	"transferlist/internal/eventbus"
	"transferlist/internal/logic"
	"transferlist/internal/widget"
)

func sampleValue() domain.Value {
	return domain.NewValue(
		[]domain.Item{
			{Value: "react", Label: "React"},
			{Value: "ng", Label: "Angular"},
		},
		[]domain.Item{{Value: "sv", Label: "Svelte"}},
	)
}

func TestCreateGeneratesID(t *testing.T) {
	r := New(nil)
	ctrl, err := r.Create("", sampleValue(), widget.DefaultConfig())
	require.NoError(t, err)
	require.NotEmpty(t, ctrl.ID())
	require.Equal(t, []string{ctrl.ID()}, r.IDs())
}

func TestCreateRejectsDuplicateID(t *testing.T) {
	r := New(nil)
	_, err := r.Create("trl", sampleValue(), widget.DefaultConfig())
	require.NoError(t, err)

	_, err = r.Create("trl", sampleValue(), widget.DefaultConfig())
	require.ErrorIs(t, err, ErrInstanceExists)
}

func TestCreateRejectsDuplicateValue(t *testing.T) {
	r := New(nil)
	v := domain.NewValue([]domain.Item{{Value: "a", Label: "A"}}, []domain.Item{{Value: "a", Label: "A"}})

	_, err := r.Create("dup", v, widget.DefaultConfig())
	var dup domain.DuplicateValueError
	require.ErrorAs(t, err, &dup)
	require.Empty(t, r.IDs(), "failed construction must not register")
}

func TestDispatchAndCurrentValue(t *testing.T) {
	r := New(nil)
	_, err := r.Create("trl", sampleValue(), widget.DefaultConfig())
	require.NoError(t, err)

	r.Dispatch("trl", widget.SelectionChanged{Side: domain.Left, Values: []string{"ng"}})
	patch := r.Dispatch("trl", widget.Transfer{Side: domain.Left})
	require.NotNil(t, patch.Value)

	v, ok := r.CurrentValue("trl")
	require.True(t, ok)
	assert.Equal(t, []domain.Item{{Value: "react", Label: "React"}}, v.Side(domain.Left))
	assert.Equal(t, []domain.Item{
		{Value: "sv", Label: "Svelte"},
		{Value: "ng", Label: "Angular"},
	}, v.Side(domain.Right))

	view, ok := r.View("trl", domain.Right)
	require.True(t, ok)
	assert.Len(t, view.Rendered, 2)
}

func TestDispatchUnknownInstanceIsNoop(t *testing.T) {
	r := New(nil)
	patch := r.Dispatch("missing", widget.TransferAll{Side: domain.Left})
	require.True(t, patch.Empty())

	_, ok := r.CurrentValue("missing")
	require.False(t, ok)
	_, ok = r.View("missing", domain.Left)
	require.False(t, ok)
	_, ok = r.Config("missing")
	require.False(t, ok)
}

func TestConfigAndView(t *testing.T) {
	r := New(nil)
	cfg := widget.DefaultConfig()
	cfg.Limit = 1
	cfg.NothingFound = "Nothing found"
	_, err := r.Create("trl", sampleValue(), cfg)
	require.NoError(t, err)

	got, ok := r.Config("trl")
	require.True(t, ok)
	assert.Equal(t, 1, got.Limit)

	view, ok := r.View("trl", domain.Left)
	require.True(t, ok)
	assert.Len(t, view.Items, 2)
	assert.Len(t, view.Rendered, 1)
}

func TestRemove(t *testing.T) {
	r := New(nil)
	_, err := r.Create("trl", sampleValue(), widget.DefaultConfig())
	require.NoError(t, err)

	r.Remove("trl")
	r.Remove("trl")
	require.Empty(t, r.IDs())
	require.True(t, r.Dispatch("trl", widget.TransferAll{Side: domain.Left}).Empty())

	// the id can be reused after teardown
	_, err = r.Create("trl", sampleValue(), widget.DefaultConfig())
	require.NoError(t, err)
}

func TestEventsArePublished(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	events := make(chan domain.DomainEvent, 10)
	for _, typ := range []domain.EventType{
		domain.EventInstanceCreated,
		domain.EventSearchChanged,
		domain.EventValueChanged,
		domain.EventInstanceRemoved,
	} {
		bus.Subscribe(typ, func(e domain.DomainEvent) { events <- e })
	}

	r := New(bus)
	_, err := r.Create("trl", sampleValue(), widget.DefaultConfig())
	require.NoError(t, err)
	r.Dispatch("trl", widget.SearchChanged{Side: domain.Left, Text: "re"})
	r.Dispatch("trl", widget.Transfer{Side: domain.Left}) // nothing selected, no event
	r.Dispatch("trl", widget.TransferAll{Side: domain.Left})
	r.Remove("trl")

	next := func() domain.DomainEvent {
		select {
		case e := <-events:
			return e
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for event")
			return nil
		}
	}

	created := next().(domain.InstanceCreatedEvent)
	assert.Equal(t, "trl", created.ID)

	search := next().(domain.SearchChangedEvent)
	assert.Equal(t, "re", search.Text)
	assert.Equal(t, 1, search.Matches)

	changed := next().(domain.ValueChangedEvent)
	assert.True(t, changed.All)
	assert.Equal(t, domain.Left, changed.From)
	assert.Equal(t, []string{"react"}, changed.Moved)
	assert.Len(t, changed.Value.Side(domain.Right), 2)

	removed := next().(domain.InstanceRemovedEvent)
	assert.Equal(t, "trl", removed.ID)
}

func TestInstancesAreIsolated(t *testing.T) {
	r := New(nil)
	const n = 8
	for i := 0; i < n; i++ {
		_, err := r.Create(fmt.Sprintf("trl-%d", i), sampleValue(), widget.DefaultConfig())
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				side := domain.Sides[j%2]
				r.Dispatch(id, widget.TransferAll{Side: side})
			}
		}(fmt.Sprintf("trl-%d", i))
	}
	wg.Wait()

	for _, id := range r.IDs() {
		v, ok := r.CurrentValue(id)
		require.True(t, ok)
		require.Equal(t, 3, v.Len())
		require.NoError(t, logic.ValidatePartition(v))
	}
}

func TestConcurrentValueEventsFollowApplyOrder(t *testing.T) {
	bus := eventbus.New(nil)
	r := New(bus)

	const n = 50
	left := make([]domain.Item, n)
	for i := range left {
		left[i] = domain.Item{Value: fmt.Sprintf("v%d", i), Label: fmt.Sprintf("Item %d", i)}
	}
	_, err := r.Create("trl", domain.NewValue(left, nil), widget.DefaultConfig())
	require.NoError(t, err)

	var mu sync.Mutex
	var sizes []int
	bus.Subscribe(eventbus.EventValueChanged, func(e eventbus.DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		sizes = append(sizes, len(e.(eventbus.ValueChangedEvent).Value.Side(domain.Right)))
	})

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(v string) {
			defer wg.Done()
			r.Dispatch("trl", widget.SelectionChanged{Side: domain.Left, Values: []string{v}})
			r.Dispatch("trl", widget.Transfer{Side: domain.Left})
		}(left[i].Value)
	}
	wg.Wait()
	bus.Close()

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, sizes)
	for i := 1; i < len(sizes); i++ {
		assert.Greater(t, sizes[i], sizes[i-1], "event %d arrived out of order", i)
	}
}
