// Package calculator implements the order cart and its derived price totals.
package calculator

import (
	"github.com/shopspring/decimal"
)

// Line is one product in the cart.
type Line struct {
	ItemID    int
	Name      string
	UnitPrice decimal.Decimal // copied from the catalog when the line was added
	Quantity  int
}

// Cart is an ordered list of lines keyed by item ID.
// A line never survives with a quantity of zero or less.
type Cart struct {
	lines []Line
}

// NewCart builds a cart from seed lines. Lines with a non-positive quantity are
// dropped and repeated item IDs are merged into the first occurrence.
func NewCart(seed ...Line) *Cart {
	c := &Cart{}
	for _, l := range seed {
		if l.Quantity <= 0 {
			continue
		}
		if i := c.index(l.ItemID); i >= 0 {
			c.lines[i].Quantity += l.Quantity
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

func (c *Cart) index(itemID int) int {
	for i := range c.lines {
		if c.lines[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// ItemCount returns the sum of all quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Quantity returns the quantity of itemID, or 0 when it is not in the cart.
func (c *Cart) Quantity(itemID int) int {
	if i := c.index(itemID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Increase adds one to the quantity of itemID.
// It reports false and leaves the cart untouched when the item is absent.
func (c *Cart) Increase(itemID int) bool {
	i := c.index(itemID)
	if i < 0 {
		return false
	}
	c.lines[i].Quantity++
	return true
}

// Decrease takes one from the quantity of itemID and removes the line once it
// reaches zero. It reports false when the item is absent.
func (c *Cart) Decrease(itemID int) bool {
	i := c.index(itemID)
	if i < 0 {
		return false
	}
	q := c.lines[i].Quantity - 1
	if q <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return true
	}
	c.lines[i].Quantity = q
	return true
}
