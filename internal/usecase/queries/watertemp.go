package queries

import (
	"context"
	"time"

	"famboard/internal/domain/watertemp"
	"famboard/internal/pkg/clock"
	"famboard/internal/pkg/errs"
)

// CurrentTemperature is served straight from the sensor feed; nils mean the
// feed had no data for today.
type CurrentTemperature struct {
	Temperature *float64
	Timestamp   *time.Time
}

type SensorFeed interface {
	FetchLatestReading(ctx context.Context, day time.Time) (*watertemp.Reading, error)
}

type WaterTempQueries interface {
	Current(ctx context.Context) (*CurrentTemperature, error)
}

type waterTempQueriesImpl struct {
	feed  SensorFeed
	clock clock.Clock
}

func NewWaterTempQueries(feed SensorFeed, clock clock.Clock) WaterTempQueries {
	return &waterTempQueriesImpl{feed: feed, clock: clock}
}

func (q *waterTempQueriesImpl) Current(ctx context.Context) (*CurrentTemperature, error) {
	reading, err := q.feed.FetchLatestReading(ctx, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUpstreamUnavailable)
	}
	if reading == nil {
		return &CurrentTemperature{}, nil
	}

	temp := reading.Value
	ts := reading.Timestamp
	return &CurrentTemperature{Temperature: &temp, Timestamp: &ts}, nil
}
