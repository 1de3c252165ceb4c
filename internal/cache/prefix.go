package cache

import "fmt"

type Prefix string

const (
	UnreadNotifications Prefix = "unread_notifications"
)

func (p Prefix) Key(id string) string {
	return fmt.Sprintf("%s:%s", p, id)
}
