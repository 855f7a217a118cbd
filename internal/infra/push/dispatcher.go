// Package push delivers Web Push notifications to registered browser
// endpoints and prunes the ones the push service reports as gone.
package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"famboard/internal/infra/repository"
	"famboard/internal/pkg/config"
	"famboard/internal/pkg/errs"
	"famboard/internal/usecase/commands"

	webpush "github.com/SherClockHolmes/webpush-go"
)

type EndpointStore interface {
	ListByUserIDs(ctx context.Context, userIDs []int64) ([]repository.PushEndpoint, error)
	DeleteByEndpoint(ctx context.Context, endpoint string) error
}

type Dispatcher struct {
	endpoints EndpointStore
	cfg       config.PushConfig
	logger    *slog.Logger
}

func NewDispatcher(endpoints EndpointStore, cfg config.PushConfig, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		endpoints: endpoints,
		cfg:       cfg,
		logger:    logger,
	}
}

type payload struct {
	Title string      `json:"title"`
	Body  string      `json:"body"`
	Data  payloadData `json:"data"`
}

type payloadData struct {
	URL string `json:"url"`
}

// Dispatch sends the notification to every endpoint of every listed user.
// Delivery is at-least-once: individual failures are logged and skipped, and
// endpoints answering 404/410 are deleted so they stop failing forever.
func (d *Dispatcher) Dispatch(ctx context.Context, userIDs []int64, n commands.Notification) error {
	if len(userIDs) == 0 {
		return nil
	}

	endpoints, err := d.endpoints.ListByUserIDs(ctx, userIDs)
	if err != nil {
		return errs.Wrap(err, "failed to load push endpoints")
	}

	body, err := json.Marshal(payload{
		Title: n.Title,
		Body:  n.Body,
		Data:  payloadData{URL: n.URL},
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal push payload")
	}

	options := &webpush.Options{
		Subscriber:      d.cfg.Subscriber,
		VAPIDPublicKey:  d.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: d.cfg.VAPIDPrivateKey,
		TTL:             int(d.cfg.Timeout.Seconds()),
	}

	for _, ep := range endpoints {
		sub := &webpush.Subscription{
			Endpoint: ep.Endpoint,
			Keys: webpush.Keys{
				P256dh: ep.P256dh,
				Auth:   ep.Auth,
			},
		}

		resp, err := webpush.SendNotificationWithContext(ctx, body, sub, options)
		if err != nil {
			d.logger.Warn("push delivery failed",
				"user_id", ep.UserID, "error", err.Error())
			continue
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound {
			// The push service no longer knows this endpoint.
			if err := d.endpoints.DeleteByEndpoint(ctx, ep.Endpoint); err != nil {
				d.logger.Warn("failed to prune expired endpoint",
					"user_id", ep.UserID, "error", err.Error())
			} else {
				d.logger.Info("pruned expired push endpoint", "user_id", ep.UserID)
			}
			continue
		}

		if resp.StatusCode >= http.StatusBadRequest {
			d.logger.Warn("push service rejected notification",
				"user_id", ep.UserID, "status", resp.StatusCode)
		}
	}

	return nil
}
