package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"famboard/internal/domain/watertemp"
	"famboard/internal/pkg/clock"
	"famboard/internal/pkg/config"
)

// Notification is what gets pushed to a subscriber's browser.
type Notification struct {
	Title string
	Body  string
	URL   string
}

type SensorFeed interface {
	FetchLatestReading(ctx context.Context, day time.Time) (*watertemp.Reading, error)
}

type WaterTempStateRepository interface {
	Current(ctx context.Context) (*watertemp.State, error)
	Upsert(ctx context.Context, state watertemp.State) error
}

type TempAlertSubscribers interface {
	List(ctx context.Context) ([]int64, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, userIDs []int64, n Notification) error
}

type WaterTempCommands interface {
	// CheckWaterTemp is one monitor tick. It never returns an error to the
	// scheduler; everything recoverable is logged and retried on the next
	// tick.
	CheckWaterTemp(ctx context.Context)
}

type waterTempCommandsImpl struct {
	feed        SensorFeed
	states      WaterTempStateRepository
	subscribers TempAlertSubscribers
	dispatcher  Dispatcher
	thresholds  watertemp.Thresholds
	clock       clock.Clock
	logger      *slog.Logger
}

func NewWaterTempCommands(
	feed SensorFeed,
	states WaterTempStateRepository,
	subscribers TempAlertSubscribers,
	dispatcher Dispatcher,
	cfg config.MonitorConfig,
	clock clock.Clock,
	logger *slog.Logger,
) WaterTempCommands {
	return &waterTempCommandsImpl{
		feed:        feed,
		states:      states,
		subscribers: subscribers,
		dispatcher:  dispatcher,
		thresholds:  watertemp.Thresholds{Min: cfg.MinTemp, Max: cfg.MaxTemp},
		clock:       clock,
		logger:      logger,
	}
}

func (c *waterTempCommandsImpl) CheckWaterTemp(ctx context.Context) {
	now := c.clock.Now()

	reading, err := c.feed.FetchLatestReading(ctx, now)
	if err != nil {
		// Persisted state stays untouched; the next tick is the retry.
		c.logger.Warn("water temp check: sensor fetch failed", "error", err.Error())
		return
	}
	if reading == nil {
		c.logger.Info("water temp check: no sensor data for today")
		return
	}

	previous, err := c.states.Current(ctx)
	if err != nil {
		c.logger.Error("water temp check: failed to load previous state", "error", err.Error())
		return
	}

	// First run: seed a NORMAL baseline. The comparison below still runs, so
	// an abnormal very first reading notifies rather than being swallowed.
	prevClass := watertemp.ClassNormal
	if previous != nil {
		prevClass = previous.Current
	}

	current := watertemp.Classify(reading.Value, c.thresholds)

	if watertemp.ShouldNotify(prevClass, current) {
		c.notify(ctx, prevClass, current, reading)
	}

	// Persist unconditionally, whether or not anything was sent.
	if err := c.states.Upsert(ctx, watertemp.State{
		Current:   current,
		LastTemp:  reading.Value,
		LastCheck: now,
	}); err != nil {
		c.logger.Error("water temp check: failed to persist state", "error", err.Error())
	}
}

func (c *waterTempCommandsImpl) notify(ctx context.Context, prev, current watertemp.Classification, reading *watertemp.Reading) {
	subscriberIDs, err := c.subscribers.List(ctx)
	if err != nil {
		c.logger.Error("water temp check: failed to list subscribers", "error", err.Error())
		return
	}
	if len(subscriberIDs) == 0 {
		return
	}

	notification := composeIncidentNotification(current, reading)
	if err := c.dispatcher.Dispatch(ctx, subscriberIDs, notification); err != nil {
		c.logger.Error("water temp check: dispatch failed",
			"from", prev.String(), "to", current.String(), "error", err.Error())
		return
	}

	c.logger.Info("water temp incident notified",
		"from", prev.String(), "to", current.String(),
		"temp", reading.Value, "subscribers", len(subscriberIDs))
}

func composeIncidentNotification(current watertemp.Classification, reading *watertemp.Reading) Notification {
	at := reading.Timestamp.Format("15:04")

	var body string
	switch current {
	case watertemp.ClassLow:
		body = fmt.Sprintf("Water temperature at %s dropped to %.1f °C, below the allowed range.", at, reading.Value)
	case watertemp.ClassHigh:
		body = fmt.Sprintf("Water temperature at %s rose to %.1f °C, above the allowed range.", at, reading.Value)
	default:
		body = fmt.Sprintf("Water temperature at %s is back to %.1f °C, within the allowed range.", at, reading.Value)
	}

	title := "Water temperature warning"
	if current == watertemp.ClassNormal {
		title = "Water temperature back to normal"
	}

	return Notification{
		Title: title,
		Body:  body,
		URL:   "/app/water-temperature",
	}
}
