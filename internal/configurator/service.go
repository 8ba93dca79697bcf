package configurator

import (
	"context"

	"github.com/printfood/storefront/internal/cart"
	"github.com/printfood/storefront/internal/catalog"
)

// Carts is the slice of the cart service the configurator needs to add
// a finished build.
type Carts interface {
	AddItem(ctx context.Context, item cart.ItemCreate) (cart.View, error)
}

// Service prices custom builds against the catalog and pushes finished
// builds into the cart with their configuration attached.
type Service struct {
	catalog catalog.ServiceInterface
	carts   Carts
}

func NewService(cat catalog.ServiceInterface, carts Carts) *Service {
	return &Service{catalog: cat, carts: carts}
}

// Estimate prices a build of the given product. Zero-value sliders fall
// back to the defaults so a bare request prices the stock build.
func (s *Service) Estimate(ctx context.Context, productID int, cfg Config) (Estimate, error) {
	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return Estimate{}, err
	}
	cfg = withDefaults(cfg)
	return Estimate{
		Config:     cfg,
		BasePrice:  p.Price,
		FinalPrice: Price(p.Price, cfg),
		Nutrition:  Facts(cfg),
	}, nil
}

// AddToCart prices the build and adds it as a cart line carrying the
// slider state, the computed price and the nutrition estimate, so the
// cart and order pages can render the custom line without recomputing.
func (s *Service) AddToCart(ctx context.Context, productID, quantity int, cfg Config) (cart.View, error) {
	est, err := s.Estimate(ctx, productID, cfg)
	if err != nil {
		return cart.View{}, err
	}
	if quantity < 1 {
		quantity = 1
	}
	return s.carts.AddItem(ctx, cart.ItemCreate{
		ProductID: productID,
		Quantity:  quantity,
		CustomConfiguration: map[string]any{
			"meatPercentage":  est.Config.MeatPercentage,
			"vegPercentage":   est.Config.VegPercentage,
			"saucePercentage": est.Config.SaucePercentage,
			"thickness":       est.Config.Thickness,
			"diameter":        est.Config.Diameter,
			"finalPrice":      est.FinalPrice,
			"nutrition": map[string]any{
				"calories": est.Nutrition.Calories,
				"protein":  est.Nutrition.Protein,
				"carbs":    est.Nutrition.Carbs,
				"fat":      est.Nutrition.Fat,
			},
		},
	})
}

func withDefaults(cfg Config) Config {
	if cfg == (Config{}) {
		return DefaultConfig()
	}
	return cfg
}
