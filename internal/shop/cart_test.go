package shop

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/imrishuroy/storefront/internal/catalog"
	"github.com/imrishuroy/storefront/internal/validation"
)

func TestCart_AddUpserts(t *testing.T) {
	seed := catalog.SeedProducts()
	cart := NewCart()

	cart.Add(seed[0])
	cart.Add(seed[1])
	cart.Add(seed[0])

	want := []CartItem{
		{ID: 1, Title: "Biba Embroidered Kurta", Price: 1299, Quantity: 2},
		{ID: 2, Title: "Classic Men's Shirt", Price: 999, Quantity: 1},
	}
	if diff := cmp.Diff(want, cart.Items()); diff != "" {
		t.Errorf("Items() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, cart.Len())
	assert.Equal(t, 3597.0, cart.Total())
}

func TestCart_TotalIsExact(t *testing.T) {
	cart := NewCart()
	for i := 0; i < 3; i++ {
		cart.Add(catalog.Product{ID: 9, Title: "Sock", Price: 0.1})
	}
	assert.Equal(t, 0.3, cart.Total())
}

func TestCart_Lines(t *testing.T) {
	cart := NewCart()
	assert.Empty(t, cart.Lines())

	cart.Add(catalog.Product{ID: 1, Title: "Kurta", Price: 1299})
	cart.Add(catalog.Product{ID: 1, Title: "Kurta", Price: 1299})

	want := []validation.CheckoutItem{{ID: 1, Title: "Kurta", Price: 1299, Quantity: 2}}
	if diff := cmp.Diff(want, cart.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
}

func TestCart_ItemsIsACopy(t *testing.T) {
	cart := NewCart()
	cart.Add(catalog.Product{ID: 1, Title: "Kurta", Price: 1299})

	items := cart.Items()
	items[0].Quantity = 50

	assert.Equal(t, int64(1), cart.Items()[0].Quantity)
}
