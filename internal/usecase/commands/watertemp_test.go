//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"famboard/internal/domain/watertemp"
	"famboard/internal/pkg/clock"
	"famboard/internal/pkg/config"
	"famboard/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSensorFeed struct {
	readings []*watertemp.Reading
	errs     []error
	calls    int
}

func (f *fakeSensorFeed) FetchLatestReading(_ context.Context, _ time.Time) (*watertemp.Reading, error) {
	i := f.calls
	f.calls++
	var err error
	if i < len(f.errs) {
		err = f.errs[i]
	}
	if err != nil {
		return nil, err
	}
	if i < len(f.readings) {
		return f.readings[i], nil
	}
	return nil, nil
}

type fakeStateRepo struct {
	state *watertemp.State
}

func (f *fakeStateRepo) Current(context.Context) (*watertemp.State, error) {
	return f.state, nil
}

func (f *fakeStateRepo) Upsert(_ context.Context, s watertemp.State) error {
	s.ID = 1
	f.state = &s
	return nil
}

type fakeSubscribers struct {
	ids []int64
}

func (f *fakeSubscribers) List(context.Context) ([]int64, error) {
	return f.ids, nil
}

type fakeDispatcher struct {
	sent []commands.Notification
}

func (f *fakeDispatcher) Dispatch(_ context.Context, _ []int64, n commands.Notification) error {
	f.sent = append(f.sent, n)
	return nil
}

type monitorHarness struct {
	feed       *fakeSensorFeed
	states     *fakeStateRepo
	dispatcher *fakeDispatcher
	clock      *clock.MockClock
	cmds       commands.WaterTempCommands
}

func newMonitorHarness(readings []*watertemp.Reading, errs []error) *monitorHarness {
	feed := &fakeSensorFeed{readings: readings, errs: errs}
	states := &fakeStateRepo{}
	dispatcher := &fakeDispatcher{}
	mockClock := clock.NewMockClock(time.Date(2026, 2, 14, 8, 0, 0, 0, time.UTC))

	cmds := commands.NewWaterTempCommands(
		feed,
		states,
		&fakeSubscribers{ids: []int64{1, 2}},
		dispatcher,
		config.MonitorConfig{MinTemp: 30, MaxTemp: 70},
		mockClock,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	return &monitorHarness{feed: feed, states: states, dispatcher: dispatcher, clock: mockClock, cmds: cmds}
}

func reading(h *monitorHarness, value float64) *watertemp.Reading {
	return &watertemp.Reading{Timestamp: h.clock.Now(), Value: value}
}

func TestCheckWaterTemp(t *testing.T) {
	t.Run("notifies only on classification edges", func(t *testing.T) {
		h := newMonitorHarness(nil, nil)
		temps := []float64{29, 29, 31, 31, 20}
		for _, temp := range temps {
			h.feed.readings = append(h.feed.readings, reading(h, temp))
		}

		for range temps {
			h.cmds.CheckWaterTemp(context.Background())
			h.clock.Add(30 * time.Minute)
		}

		// normal->low, low->normal, normal->low: three edges in five ticks
		require.Len(t, h.dispatcher.sent, 3)
		assert.Contains(t, h.dispatcher.sent[0].Body, "below")
		assert.Contains(t, h.dispatcher.sent[1].Body, "within")
		assert.Contains(t, h.dispatcher.sent[2].Body, "below")

		require.NotNil(t, h.states.state)
		assert.Equal(t, watertemp.ClassLow, h.states.state.Current)
		assert.Equal(t, 20.0, h.states.state.LastTemp)
	})

	t.Run("first reading in range stays silent", func(t *testing.T) {
		h := newMonitorHarness(nil, nil)
		h.feed.readings = []*watertemp.Reading{reading(h, 45)}

		h.cmds.CheckWaterTemp(context.Background())

		assert.Empty(t, h.dispatcher.sent)
		require.NotNil(t, h.states.state)
		assert.Equal(t, watertemp.ClassNormal, h.states.state.Current)
	})

	t.Run("abnormal first reading notifies against the seeded baseline", func(t *testing.T) {
		h := newMonitorHarness(nil, nil)
		h.feed.readings = []*watertemp.Reading{reading(h, 85)}

		h.cmds.CheckWaterTemp(context.Background())

		require.Len(t, h.dispatcher.sent, 1)
		assert.Contains(t, h.dispatcher.sent[0].Body, "above")
		assert.Equal(t, watertemp.ClassHigh, h.states.state.Current)
	})

	t.Run("sensor failure leaves state untouched", func(t *testing.T) {
		h := newMonitorHarness(nil, nil)
		h.feed.readings = []*watertemp.Reading{reading(h, 20), nil}
		h.feed.errs = []error{nil, errors.New("upstream timeout")}

		h.cmds.CheckWaterTemp(context.Background())
		before := *h.states.state

		h.cmds.CheckWaterTemp(context.Background())

		assert.Equal(t, before, *h.states.state)
		assert.Len(t, h.dispatcher.sent, 1, "failed tick must not notify")
	})

	t.Run("empty feed for today is a quiet no-op", func(t *testing.T) {
		h := newMonitorHarness(nil, nil)
		h.feed.readings = []*watertemp.Reading{nil}

		h.cmds.CheckWaterTemp(context.Background())

		assert.Empty(t, h.dispatcher.sent)
		assert.Nil(t, h.states.state)
	})
}
