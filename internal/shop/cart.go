package shop

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/imrishuroy/storefront/internal/catalog"
	"github.com/imrishuroy/storefront/internal/validation"
)

// CartItem is a product snapshot with the quantity wanted.
type CartItem struct {
	ID       int64
	Title    string
	Price    float64
	Quantity int64
}

// Cart holds the shopper's items in the order they were first added.
type Cart struct {
	mu    sync.Mutex
	items []CartItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of p in the cart, incrementing the quantity if p is already there.
func (c *Cart) Add(p catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, CartItem{ID: p.ID, Title: p.Title, Price: p.Price, Quantity: 1})
}

// Items returns a copy of the cart contents.
func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len is the number of distinct products in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total is the sum of price × quantity in major units.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(it.Quantity)))
	}
	f, _ := total.Float64()
	return f
}

// Lines serializes the cart into checkout request items.
func (c *Cart) Lines() []validation.CheckoutItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	lines := make([]validation.CheckoutItem, 0, len(c.items))
	for _, it := range c.items {
		lines = append(lines, validation.CheckoutItem{
			ID:       it.ID,
			Title:    it.Title,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	return lines
}
