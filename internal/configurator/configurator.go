package configurator

import "math"

// Slider defaults shown when the configurator opens.
const (
	DefaultMeatPercentage  = 60.0
	DefaultVegPercentage   = 30.0
	DefaultSaucePercentage = 10.0
	DefaultThickness       = 2.5
	DefaultDiameter        = 12.0
)

// Config is the slider state for a custom pizza build.
type Config struct {
	MeatPercentage  float64 `json:"meatPercentage"`
	VegPercentage   float64 `json:"vegPercentage"`
	SaucePercentage float64 `json:"saucePercentage"`
	Thickness       float64 `json:"thickness"`
	Diameter        float64 `json:"diameter"`
}

// DefaultConfig returns the slider positions a fresh configurator shows.
func DefaultConfig() Config {
	return Config{
		MeatPercentage:  DefaultMeatPercentage,
		VegPercentage:   DefaultVegPercentage,
		SaucePercentage: DefaultSaucePercentage,
		Thickness:       DefaultThickness,
		Diameter:        DefaultDiameter,
	}
}

// Nutrition is the estimated nutrition facts for a build, rounded to
// whole units for display.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Estimate is the priced-out build.
type Estimate struct {
	Config     Config    `json:"config"`
	BasePrice  float64   `json:"base_price"`
	FinalPrice float64   `json:"final_price"`
	Nutrition  Nutrition `json:"nutrition"`
}

// Price estimates the build price from the base product price. Meat and
// vegetable surcharges only apply above their baseline percentages, size
// scales the base linearly against the default dimensions, and the
// result never drops below 80% of the base price.
func Price(base float64, cfg Config) float64 {
	meatCost := (cfg.MeatPercentage - 50) / 100 * 5
	vegCost := (cfg.VegPercentage - 30) / 100 * 2
	sizeFactor := (cfg.Thickness * cfg.Diameter) / (DefaultThickness * DefaultDiameter)

	price := base*sizeFactor + math.Max(0, meatCost) + math.Max(0, vegCost)
	return math.Max(price, 0.8*base)
}

// Facts estimates the nutrition for a build.
func Facts(cfg Config) Nutrition {
	return Nutrition{
		Calories: int(math.Round(350 + 2*cfg.MeatPercentage)),
		Protein:  int(math.Round(20 + 0.3*cfg.MeatPercentage)),
		Carbs:    int(math.Round(25 + 0.2*cfg.VegPercentage)),
		Fat:      int(math.Round(12 + 0.15*cfg.SaucePercentage)),
	}
}
