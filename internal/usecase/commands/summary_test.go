//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"famboard/internal/pkg/clock"
	"famboard/internal/usecase/commands"
	"famboard/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresentChanges struct {
	created []*queries.PresentChange
	updated []*queries.PresentChange
}

func (f *fakePresentChanges) FindViewByID(context.Context, int64) (*queries.PresentView, error) {
	return nil, nil
}

func (f *fakePresentChanges) ListOthers(context.Context, int64) ([]*queries.PresentView, error) {
	return nil, nil
}

func (f *fakePresentChanges) ListMine(context.Context, int64) ([]*queries.OwnPresentView, error) {
	return nil, nil
}

func (f *fakePresentChanges) CreatedSince(context.Context, time.Time) ([]*queries.PresentChange, error) {
	return f.created, nil
}

func (f *fakePresentChanges) UpdatedSince(context.Context, time.Time) ([]*queries.PresentChange, error) {
	return f.updated, nil
}

type fakeUserStore struct {
	users []*queries.UserView
}

func (f *fakeUserStore) AllUsers(context.Context) ([]*queries.UserView, error) {
	return f.users, nil
}

type recordingDispatcher struct {
	byUser map[int64][]commands.Notification
}

func (d *recordingDispatcher) Dispatch(_ context.Context, userIDs []int64, n commands.Notification) error {
	if d.byUser == nil {
		d.byUser = map[int64][]commands.Notification{}
	}
	for _, id := range userIDs {
		d.byUser[id] = append(d.byUser[id], n)
	}
	return nil
}

func TestSendPresentsSummary(t *testing.T) {
	now := time.Date(2026, 2, 14, 20, 0, 0, 0, time.UTC)
	users := []*queries.UserView{
		{ID: 1, FirstName: "Alice"},
		{ID: 2, FirstName: "Bob"},
		{ID: 3, FirstName: "Carol"},
	}

	newSummary := func(changes *fakePresentChanges, dispatcher *recordingDispatcher) commands.SummaryCommands {
		return commands.NewSummaryCommands(
			changes,
			queries.NewUserQueries(&fakeUserStore{users: users}),
			dispatcher,
			clock.NewMockClock(now),
			slog.New(slog.NewTextHandler(io.Discard, nil)),
		)
	}

	t.Run("each user hears only about others' wishes", func(t *testing.T) {
		changes := &fakePresentChanges{
			created: []*queries.PresentChange{
				{ID: 1, Name: "Teapot", OwnerID: 1, OwnerName: "Alice", CreatedAt: now.Add(-2 * time.Hour)},
			},
		}
		dispatcher := &recordingDispatcher{}

		newSummary(changes, dispatcher).SendPresentsSummary(context.Background())

		assert.NotContains(t, dispatcher.byUser, int64(1), "owner must not be notified about their own wish")
		require.Contains(t, dispatcher.byUser, int64(2))
		require.Contains(t, dispatcher.byUser, int64(3))
		assert.Contains(t, dispatcher.byUser[2][0].Body, "1 new wishes from: Alice")
	})

	t.Run("rows created inside the window do not double as edits", func(t *testing.T) {
		fresh := &queries.PresentChange{ID: 1, Name: "Teapot", OwnerID: 1, OwnerName: "Alice", CreatedAt: now.Add(-2 * time.Hour)}
		changes := &fakePresentChanges{
			created: []*queries.PresentChange{fresh},
			updated: []*queries.PresentChange{fresh},
		}
		dispatcher := &recordingDispatcher{}

		newSummary(changes, dispatcher).SendPresentsSummary(context.Background())

		require.Contains(t, dispatcher.byUser, int64(2))
		body := dispatcher.byUser[2][0].Body
		assert.Contains(t, body, "new wishes")
		assert.NotContains(t, body, "edited wishes")
	})

	t.Run("old rows edited today count as edits", func(t *testing.T) {
		changes := &fakePresentChanges{
			updated: []*queries.PresentChange{
				{ID: 7, Name: "Scarf", OwnerID: 2, OwnerName: "Bob", CreatedAt: now.Add(-72 * time.Hour)},
			},
		}
		dispatcher := &recordingDispatcher{}

		newSummary(changes, dispatcher).SendPresentsSummary(context.Background())

		require.Contains(t, dispatcher.byUser, int64(1))
		assert.Contains(t, dispatcher.byUser[1][0].Body, "1 edited wishes from: Bob")
		assert.NotContains(t, dispatcher.byUser, int64(2))
	})

	t.Run("quiet day sends nothing", func(t *testing.T) {
		dispatcher := &recordingDispatcher{}

		newSummary(&fakePresentChanges{}, dispatcher).SendPresentsSummary(context.Background())

		assert.Empty(t, dispatcher.byUser)
	})
}
