package notification

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/printfood/storefront/internal/upstream"
)

var ErrNotFound = errors.New("notification not found")

// Notification mirrors the upstream notification record.
type Notification struct {
	ID        int    `json:"id"`
	UserID    int    `json:"user_id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Repository provides access to the user's upstream notifications.
type Repository interface {
	List(ctx context.Context) ([]Notification, error)
	MarkRead(ctx context.Context, id int) (Notification, error)
}

// UpstreamRepository reads notifications from the commerce backend.
type UpstreamRepository struct {
	api *upstream.Client
}

func NewUpstreamRepository(api *upstream.Client) *UpstreamRepository {
	return &UpstreamRepository{api: api}
}

func (r *UpstreamRepository) List(ctx context.Context) ([]Notification, error) {
	out := []Notification{}
	if err := r.api.Get(ctx, "/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UpstreamRepository) MarkRead(ctx context.Context, id int) (Notification, error) {
	var out Notification
	err := r.api.Put(ctx, "/notifications/"+strconv.Itoa(id)+"/read", nil, &out)
	if err != nil {
		if ue, ok := upstream.AsError(err); ok && ue.Status == 404 {
			return Notification{}, ErrNotFound
		}
		return Notification{}, err
	}
	return out, nil
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu            sync.Mutex
	notifications []Notification
}

func NewInMemoryRepository(seed []Notification) *InMemoryRepository {
	return &InMemoryRepository{notifications: append([]Notification(nil), seed...)}
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.notifications...), nil
}

func (r *InMemoryRepository) MarkRead(ctx context.Context, id int) (Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.notifications {
		if r.notifications[i].ID == id {
			r.notifications[i].IsRead = true
			return r.notifications[i], nil
		}
	}
	return Notification{}, ErrNotFound
}
