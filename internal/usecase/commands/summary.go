package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"famboard/internal/pkg/clock"
	"famboard/internal/usecase/queries"
)

// SummaryCommands builds the daily presents digest: one notification per user
// listing how many wishes other family members added or edited in the past
// day.
type SummaryCommands interface {
	SendPresentsSummary(ctx context.Context)
}

type summaryCommandsImpl struct {
	presents   queries.PresentReadStore
	users      queries.UserQueries
	dispatcher Dispatcher
	clock      clock.Clock
	logger     *slog.Logger
}

func NewSummaryCommands(
	presents queries.PresentReadStore,
	users queries.UserQueries,
	dispatcher Dispatcher,
	clock clock.Clock,
	logger *slog.Logger,
) SummaryCommands {
	return &summaryCommandsImpl{
		presents:   presents,
		users:      users,
		dispatcher: dispatcher,
		clock:      clock,
		logger:     logger,
	}
}

func (c *summaryCommandsImpl) SendPresentsSummary(ctx context.Context) {
	now := c.clock.Now()
	oneDayAgo := now.Add(-24 * time.Hour)

	users, err := c.users.All(ctx)
	if err != nil {
		c.logger.Error("presents summary: failed to list users", "error", err.Error())
		return
	}

	created, err := c.presents.CreatedSince(ctx, oneDayAgo)
	if err != nil {
		c.logger.Error("presents summary: failed to list new presents", "error", err.Error())
		return
	}
	updated, err := c.presents.UpdatedSince(ctx, oneDayAgo)
	if err != nil {
		c.logger.Error("presents summary: failed to list edited presents", "error", err.Error())
		return
	}

	for _, user := range users {
		newPresents := changesByOthers(created, user.ID, time.Time{})
		// Edits exclude rows that were also created inside the window.
		editedPresents := changesByOthers(updated, user.ID, oneDayAgo)

		if len(newPresents) == 0 && len(editedPresents) == 0 {
			continue
		}

		var parts []string
		if len(newPresents) > 0 {
			parts = append(parts, fmt.Sprintf("%d new wishes from: %s",
				len(newPresents), strings.Join(uniqueOwners(newPresents), ", ")))
		}
		if len(editedPresents) > 0 {
			parts = append(parts, fmt.Sprintf("%d edited wishes from: %s",
				len(editedPresents), strings.Join(uniqueOwners(editedPresents), ", ")))
		}

		notification := Notification{
			Title: "Daily presents summary",
			Body:  strings.Join(parts, ". "),
			URL:   "/app/presents/others",
		}

		if err := c.dispatcher.Dispatch(ctx, []int64{user.ID}, notification); err != nil {
			c.logger.Warn("presents summary: dispatch failed",
				"user_id", user.ID, "error", err.Error())
		}
	}
}

// changesByOthers keeps changes owned by someone other than userID; when
// createdBefore is non-zero, only rows created before it survive.
func changesByOthers(changes []*queries.PresentChange, userID int64, createdBefore time.Time) []*queries.PresentChange {
	var result []*queries.PresentChange
	for _, change := range changes {
		if change.OwnerID == userID {
			continue
		}
		if !createdBefore.IsZero() && !change.CreatedAt.Before(createdBefore) {
			continue
		}
		result = append(result, change)
	}
	return result
}

func uniqueOwners(changes []*queries.PresentChange) []string {
	seen := make(map[string]struct{}, len(changes))
	var owners []string
	for _, change := range changes {
		if _, ok := seen[change.OwnerName]; ok {
			continue
		}
		seen[change.OwnerName] = struct{}{}
		owners = append(owners, change.OwnerName)
	}
	return owners
}
