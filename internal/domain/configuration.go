package domain

import "strings"

// Configuration is a transient selection over one car. It is never persisted;
// it lives from the browsing session until checkout consumes it.
type Configuration struct {
	Color    *ColorOption
	Interior *InteriorOption
	Packages []PackageOption
}

// ComputeTotal aggregates the base price with the deltas of every selected
// option. No selection yields exactly the base price.
func ComputeTotal(base Money, color *ColorOption, interior *InteriorOption, packages []PackageOption) Money {
	total := base
	if color != nil {
		total = total.Add(color.PriceDelta)
	}
	if interior != nil {
		total = total.Add(interior.PriceDelta)
	}
	for _, p := range packages {
		total = total.Add(p.PriceDelta)
	}
	return total
}

func (c *Configuration) Total(car *Car) Money {
	return ComputeTotal(car.BasePrice, c.Color, c.Interior, c.Packages)
}

// Summary renders the selection for a line-item description and the receipt.
func (c *Configuration) Summary() string {
	var parts []string
	if c.Color != nil {
		parts = append(parts, "Color: "+c.Color.Name)
	}
	if c.Interior != nil {
		parts = append(parts, "Interior: "+c.Interior.Name)
	}
	for _, p := range c.Packages {
		parts = append(parts, "Package: "+p.Name)
	}
	if len(parts) == 0 {
		return "Standard configuration"
	}
	return strings.Join(parts, ", ")
}
