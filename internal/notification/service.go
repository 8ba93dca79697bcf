package notification

import "context"

// Service orchestrates notification reads. Unread counts are derived
// here so the bell badge never needs its own endpoint.
type Service struct {
	repo Repository
}

// Feed is the notification list plus the unread badge count.
type Feed struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) (Feed, error) {
	notifications, err := s.repo.List(ctx)
	if err != nil {
		return Feed{}, err
	}
	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}
	return Feed{Notifications: notifications, UnreadCount: unread}, nil
}

func (s *Service) MarkRead(ctx context.Context, id int) (Notification, error) {
	return s.repo.MarkRead(ctx, id)
}
