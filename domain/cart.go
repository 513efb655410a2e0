package domain

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CartLine is a product and the quantity the user intends to buy.
type CartLine struct {
	Product  Product
	Quantity int
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds at most one line per product id, in the order products were
// first added. Quantities are always positive.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add increments the line of product, or appends a new line with quantity 1.
func (c *Cart) Add(product Product) []CartLine {
	_, idx, found := lo.FindIndexOf(c.lines, func(l CartLine) bool {
		return l.Product.ID == product.ID
	})
	if found {
		c.lines[idx].Quantity++
		return c.Lines()
	}
	c.lines = append(c.lines, CartLine{Product: product, Quantity: 1})
	return c.Lines()
}

// SetQuantity removes the line when quantity is not positive, otherwise sets
// it. Unknown products are ignored.
func (c *Cart) SetQuantity(productID ProductID, quantity int) []CartLine {
	if quantity <= 0 {
		return c.Remove(productID)
	}
	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Quantity = quantity
		}
	}
	return c.Lines()
}

func (c *Cart) Remove(productID ProductID) []CartLine {
	c.lines = lo.Reject(c.lines, func(l CartLine, _ int) bool {
		return l.Product.ID == productID
	})
	return c.Lines()
}

// Total is recomputed from the lines on every call.
func (c *Cart) Total() decimal.Decimal {
	return lo.Reduce(c.lines, func(sum decimal.Decimal, l CartLine, _ int) decimal.Decimal {
		return sum.Add(l.Subtotal())
	}, decimal.Zero)
}

// ItemCount is the number of units across all lines.
func (c *Cart) ItemCount() int {
	return lo.SumBy(c.lines, func(l CartLine) int {
		return l.Quantity
	})
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart content.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}
