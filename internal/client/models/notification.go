package models

// Notification is a message sent to a user, usually by an administrator.
type Notification struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	CreatedAt Time   `json:"created_at"`
}

func (n *Notification) Validate() error {
	if n.ID <= 0 {
		return invalid("notification id must be positive, got %d", n.ID)
	}
	return nil
}

// NotificationInput is the body of POST /admin/notifications.
type NotificationInput struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
}
