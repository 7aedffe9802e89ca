package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrUnknownOption = errors.New("selected option does not exist on this car")

type ColorOption struct {
	Name       string `bson:"name" json:"name"`
	PriceDelta Money  `bson:"price_delta" json:"price_delta"`
	Swatch     string `bson:"swatch" json:"swatch"`
}

type InteriorOption struct {
	Name       string `bson:"name" json:"name"`
	PriceDelta Money  `bson:"price_delta" json:"price_delta"`
}

type PackageOption struct {
	Name       string   `bson:"name" json:"name"`
	PriceDelta Money    `bson:"price_delta" json:"price_delta"`
	Features   []string `bson:"features" json:"features"`
}

type Car struct {
	ID          string           `bson:"_id,omitempty" json:"id"`
	Name        string           `bson:"name" json:"name"`
	Tagline     string           `bson:"tagline" json:"tagline"`
	Description string           `bson:"description" json:"description"`
	BasePrice   Money            `bson:"base_price" json:"base_price"`
	Category    string           `bson:"category" json:"category"`
	ImageURL    string           `bson:"image_url" json:"image_url"`
	Specs       string           `bson:"specs" json:"specs"`
	Features    []string         `bson:"features" json:"features"`
	Colors      []ColorOption    `bson:"colors" json:"colors"`
	Interiors   []InteriorOption `bson:"interiors" json:"interiors"`
	Packages    []PackageOption  `bson:"packages" json:"packages"`
	Featured    bool             `bson:"featured" json:"featured"`
	CreatedAt   time.Time        `bson:"created_at" json:"created_at"`
}

// Validate enforces the write-boundary rules; the document store itself has
// no schema, so this is the only place the shape is checked.
func (c *Car) Validate() error {
	if c.Name == "" {
		return errors.New("car name is required")
	}
	if c.BasePrice.IsNegative() {
		return errors.New("base price must be non-negative")
	}
	for _, o := range c.Colors {
		if o.PriceDelta.IsNegative() {
			return fmt.Errorf("color %q: price delta must be non-negative", o.Name)
		}
	}
	for _, o := range c.Interiors {
		if o.PriceDelta.IsNegative() {
			return fmt.Errorf("interior %q: price delta must be non-negative", o.Name)
		}
	}
	for _, o := range c.Packages {
		if o.PriceDelta.IsNegative() {
			return fmt.Errorf("package %q: price delta must be non-negative", o.Name)
		}
	}
	return nil
}

// Resolve maps client-chosen option names onto the car's own option sets.
// Unknown names are rejected so a stale or tampered client cannot invent
// deltas that were never offered.
func (c *Car) Resolve(colorName, interiorName string, packageNames []string) (*Configuration, error) {
	cfg := &Configuration{}

	if colorName != "" {
		found := false
		for i := range c.Colors {
			if c.Colors[i].Name == colorName {
				cfg.Color = &c.Colors[i]
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("color %q: %w", colorName, ErrUnknownOption)
		}
	}

	if interiorName != "" {
		found := false
		for i := range c.Interiors {
			if c.Interiors[i].Name == interiorName {
				cfg.Interior = &c.Interiors[i]
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("interior %q: %w", interiorName, ErrUnknownOption)
		}
	}

	for _, name := range packageNames {
		found := false
		for i := range c.Packages {
			if c.Packages[i].Name == name {
				cfg.Packages = append(cfg.Packages, c.Packages[i])
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("package %q: %w", name, ErrUnknownOption)
		}
	}

	return cfg, nil
}
