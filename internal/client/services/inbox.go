package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/fittrack/internal/client/client"
	"github.com/dmitrijs2005/fittrack/internal/client/models"
)

// Inbox is the local copy of the caller's notifications.
type Inbox struct {
	api client.NotificationsAPI

	mu    sync.Mutex
	items []models.Notification
}

func NewInbox(api client.NotificationsAPI) *Inbox {
	return &Inbox{api: api}
}

// Load replaces the local copy with the server's list.
func (b *Inbox) Load(ctx context.Context) ([]models.Notification, error) {
	items, err := b.api.Notifications(ctx)
	if err != nil {
		return nil, err
	}
	b.mu.Lock()
	b.items = items
	b.mu.Unlock()
	return b.Items(), nil
}

// Items returns a copy of the local list.
func (b *Inbox) Items() []models.Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Notification(nil), b.items...)
}

func (b *Inbox) UnreadCount() int {
	return UnreadCount(b.Items())
}

// MarkRead marks one notification read on the server, then flips only that
// entry locally. The list is not fetched again.
func (b *Inbox) MarkRead(ctx context.Context, id int64) error {
	if err := b.api.MarkNotificationRead(ctx, id); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.items {
		if b.items[i].ID == id {
			b.items[i].IsRead = true
		}
	}
	return nil
}

func UnreadCount(items []models.Notification) int {
	n := 0
	for _, it := range items {
		if !it.IsRead {
			n++
		}
	}
	return n
}
