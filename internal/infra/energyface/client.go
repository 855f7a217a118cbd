// Package energyface reads temperature samples from the energyface.eu data
// feed. One JSON file per device per day; entries are (hour offset, value)
// pairs from midnight local time.
package energyface

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"famboard/internal/domain/watertemp"
	"famboard/internal/pkg/config"
	"famboard/internal/pkg/errs"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	siteID     string
	deviceID   int
}

func NewClient(cfg config.SensorConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		siteID:     cfg.SiteID,
		deviceID:   cfg.DeviceID,
	}
}

type feedEntry struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FetchLatestReading returns the newest sample for the given day, or nil when
// the feed has no data yet (an empty day file or a 404 both mean "nothing
// measured"). Network and decode failures come back as errors; callers decide
// whether those are fatal.
func (c *Client) FetchLatestReading(ctx context.Context, day time.Time) (*watertemp.Reading, error) {
	url := fmt.Sprintf("%s/Data/%s/GrafData/%d/%02d/%02d_%d.json",
		c.baseURL, c.siteID, day.Year(), int(day.Month()), day.Day(), c.deviceID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build sensor request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "sensor request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("sensor feed returned status %d", resp.StatusCode))
	}

	var entries []feedEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, errs.Wrap(err, "failed to decode sensor feed")
	}
	if len(entries) == 0 {
		return nil, nil
	}

	latest := entries[len(entries)-1]
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	return &watertemp.Reading{
		Timestamp: midnight.Add(time.Duration(latest.X * float64(time.Hour))),
		Value:     latest.Y,
	}, nil
}
