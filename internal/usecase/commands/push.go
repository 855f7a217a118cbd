package commands

import (
	"context"

	"famboard/internal/infra"
	"famboard/internal/infra/repository"
	"famboard/internal/pkg/errs"
)

type PushEndpointRepository interface {
	Create(ctx context.Context, ep repository.PushEndpoint) error
	DeleteByUserAndEndpoint(ctx context.Context, userID int64, endpoint string) error
}

type TempAlertSubscriberRepository interface {
	Add(ctx context.Context, userID int64) error
	Remove(ctx context.Context, userID int64) error
}

type SubscribePushParams struct {
	Endpoint string
	P256dh   string
	Auth     string
}

type PushCommands interface {
	Subscribe(ctx context.Context, userID int64, params SubscribePushParams) error
	Unsubscribe(ctx context.Context, userID int64, endpoint string) error
	EnableTempAlerts(ctx context.Context, userID int64) error
	DisableTempAlerts(ctx context.Context, userID int64) error
}

type pushCommandsImpl struct {
	endpoints   PushEndpointRepository
	subscribers TempAlertSubscriberRepository
}

func NewPushCommands(endpoints PushEndpointRepository, subscribers TempAlertSubscriberRepository) PushCommands {
	return &pushCommandsImpl{
		endpoints:   endpoints,
		subscribers: subscribers,
	}
}

func (c *pushCommandsImpl) Subscribe(ctx context.Context, userID int64, params SubscribePushParams) error {
	err := c.endpoints.Create(ctx, repository.PushEndpoint{
		UserID:   userID,
		Endpoint: params.Endpoint,
		P256dh:   params.P256dh,
		Auth:     params.Auth,
	})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *pushCommandsImpl) Unsubscribe(ctx context.Context, userID int64, endpoint string) error {
	if err := c.endpoints.DeleteByUserAndEndpoint(ctx, userID, endpoint); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrEndpointNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *pushCommandsImpl) EnableTempAlerts(ctx context.Context, userID int64) error {
	if err := c.subscribers.Add(ctx, userID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *pushCommandsImpl) DisableTempAlerts(ctx context.Context, userID int64) error {
	if err := c.subscribers.Remove(ctx, userID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
