// Package catalog holds the café's fixed menu and the filter used by the menu page.
package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is the tag a menu item is filed under.
type Category string

const (
	// CategoryAll is the pseudo-category that matches every item.
	CategoryAll       Category = "all"
	CategoryCoffee    Category = "coffee"
	CategoryPastry    Category = "pastry"
	CategoryBreakfast Category = "breakfast"
	CategoryLunch     Category = "lunch"
)

// CategoryTab is one entry of the menu page's filter bar.
type CategoryTab struct {
	ID    Category
	Label string
}

var categoryTabs = []CategoryTab{
	{ID: CategoryAll, Label: "ALL"},
	{ID: CategoryCoffee, Label: "COFFEE"},
	{ID: CategoryPastry, Label: "PASTRY"},
	{ID: CategoryBreakfast, Label: "BREAKFAST"},
	{ID: CategoryLunch, Label: "LUNCH"},
}

// Categories returns the filter tabs in display order.
func Categories() []CategoryTab {
	out := make([]CategoryTab, len(categoryTabs))
	copy(out, categoryTabs)
	return out
}

// ParseCategory converts a request value into a Category.
// An empty value means CategoryAll.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryAll, nil
	}
	for _, tab := range categoryTabs {
		if string(tab.ID) == s {
			return tab.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Item is a purchasable menu entry. Items are never mutated after start-up.
type Item struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	Category    Category
	Color       string
}

func item(id int, name, description, price string, category Category, color string) Item {
	return Item{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		Category:    category,
		Color:       color,
	}
}

var menu = []Item{
	item(1, "Espresso", "Double shot of intense coffee", "3.50", CategoryCoffee, "#8B5A2B"),
	item(2, "Cappuccino", "Espresso with steamed milk and foam", "4.50", CategoryCoffee, "#8B5A2B"),
	item(3, "Latte", "Espresso with plenty of steamed milk", "4.75", CategoryCoffee, "#8B5A2B"),
	item(4, "Mocha", "Espresso with chocolate and milk", "5.25", CategoryCoffee, "#C87941"),
	item(5, "Caramel Macchiato", "Vanilla, milk, espresso, caramel drizzle", "5.50", CategoryCoffee, "#D2B48C"),
	item(6, "Cold Brew", "24-hour steeped coffee, served cold", "5.00", CategoryCoffee, "#96694F"),

	item(7, "Almond Croissant", "Buttery, flaky with almond filling", "5.25", CategoryPastry, "#D2B48C"),
	item(8, "Cinnamon Roll", "Soft dough with cinnamon swirls", "4.75", CategoryPastry, "#C87941"),
	item(9, "Pain au Chocolat", "Flaky pastry with chocolate filling", "4.50", CategoryPastry, "#8B5A2B"),
	item(10, "Blueberry Muffin", "Moist muffin loaded with blueberries", "4.25", CategoryPastry, "#96694F"),

	item(11, "Avocado Toast", "Sourdough bread with smashed avocado", "8.50", CategoryBreakfast, "#96694F"),
	item(12, "Breakfast Sandwich", "Egg, cheese and bacon on artisan roll", "7.75", CategoryBreakfast, "#D2B48C"),
	item(13, "Greek Yogurt Bowl", "With honey, granola and fresh berries", "6.50", CategoryBreakfast, "#C87941"),

	item(14, "Chicken Pesto Panini", "Grilled chicken with pesto and mozzarella", "9.75", CategoryLunch, "#8B5A2B"),
	item(15, "Caprese Salad", "Fresh tomatoes, mozzarella and basil", "8.50", CategoryLunch, "#D2B48C"),
	item(16, "Soup of the Day", "Freshly made soup with artisan bread", "6.75", CategoryLunch, "#C87941"),
}

// Menu returns a copy of the full catalog in display order.
func Menu() []Item {
	out := make([]Item, len(menu))
	copy(out, menu)
	return out
}

// Lookup returns the catalog item with the given ID.
func Lookup(id int) (Item, bool) {
	for _, it := range menu {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
