// Package category defines the closed set of expense categories and their
// display attributes.
package category

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Category is one of the fixed expense category tags. New categories cannot
// be created at runtime.
type Category string

const (
	Food           Category = "Food"
	Travel         Category = "Travel"
	SocialLife     Category = "Social Life"
	Shopping       Category = "Shopping"
	Health         Category = "Health"
	Education      Category = "Education"
	KidsProtection Category = "Kids & Protection"
	Miscellaneous  Category = "Miscellaneous"
)

// Info holds the display attributes registered for a category.
type Info struct {
	Color lipgloss.Color
	Icon  string
}

// fallback is returned for any value outside the registry.
var fallback = Info{Color: lipgloss.Color("#8D99AE"), Icon: "?"}

var registry = map[Category]Info{
	Food:           {Color: lipgloss.Color("#FF6B6B"), Icon: "🍜"},
	Travel:         {Color: lipgloss.Color("#4ECDC4"), Icon: "✈"},
	SocialLife:     {Color: lipgloss.Color("#FFD166"), Icon: "♥"},
	Shopping:       {Color: lipgloss.Color("#6A0572"), Icon: "🛒"},
	Health:         {Color: lipgloss.Color("#1A936F"), Icon: "⚕"},
	Education:      {Color: lipgloss.Color("#3D5A80"), Icon: "🎓"},
	KidsProtection: {Color: lipgloss.Color("#E07A5F"), Icon: "🧸"},
	Miscellaneous:  {Color: lipgloss.Color("#8D99AE"), Icon: "…"},
}

// ordered is the fixed presentation order for the registry.
var ordered = []Category{
	Food,
	Travel,
	SocialLife,
	Shopping,
	Health,
	Education,
	KidsProtection,
	Miscellaneous,
}

// All returns every registered category in fixed order.
func All() []Category {
	out := make([]Category, len(ordered))
	copy(out, ordered)
	return out
}

// Valid reports whether c is one of the registered categories.
func Valid(c Category) bool {
	_, ok := registry[c]
	return ok
}

// Parse matches s against the registered category labels,
// case-insensitively. The boolean is false when nothing matches.
func Parse(s string) (Category, bool) {
	for _, c := range ordered {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// Lookup returns the display attributes for c, falling back to a neutral
// entry for unrecognized values.
func Lookup(c Category) Info {
	if info, ok := registry[c]; ok {
		return info
	}
	return fallback
}

// ColorFor returns the registered display color for c.
func ColorFor(c Category) lipgloss.Color {
	return Lookup(c).Color
}

// IconFor returns the registered icon glyph for c.
func IconFor(c Category) string {
	return Lookup(c).Icon
}

func (c Category) String() string {
	return string(c)
}
