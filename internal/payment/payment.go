package payment

import (
	"context"

	"github.com/printfood/storefront/internal/upstream"
)

// Repository forwards gateway callbacks to the commerce backend for
// reconciliation.
type Repository interface {
	Confirm(ctx context.Context, rawQuery string) error
}

// UpstreamRepository replays the gateway's callback parameters to the
// backend, which verifies the signature and settles the order.
type UpstreamRepository struct {
	api *upstream.Client
}

func NewUpstreamRepository(api *upstream.Client) *UpstreamRepository {
	return &UpstreamRepository{api: api}
}

func (r *UpstreamRepository) Confirm(ctx context.Context, rawQuery string) error {
	return r.api.Get(ctx, "/order/payment_return?"+rawQuery, nil, nil)
}
