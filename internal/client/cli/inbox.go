package cli

import (
	"context"
	"fmt"
)

func (a *App) Notifications(ctx context.Context, _ []string) error {
	items, err := a.inbox.Load(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		printlnFn("No notifications.")
		return nil
	}
	printlnFn(fmt.Sprintf("%d unread", a.inbox.UnreadCount()))
	for _, n := range items {
		mark := " "
		if !n.IsRead {
			mark = "*"
		}
		printlnFn(fmt.Sprintf(" %s #%d %s  %s", mark, n.ID, n.CreatedAt.Format("2006-01-02 15:04"), n.Message))
	}
	return nil
}

func (a *App) MarkRead(ctx context.Context, args []string) error {
	id, err := intArg(a.reader, a.out, args, "Notification id")
	if err != nil {
		return err
	}
	if err := a.inbox.MarkRead(ctx, id); err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Marked #%d read, %d unread.", id, a.inbox.UnreadCount()))
	return nil
}
