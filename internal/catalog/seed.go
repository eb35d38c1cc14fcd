package catalog

// SeedProducts returns the products a fresh in-memory catalog starts with.
func SeedProducts() []Product {
	return []Product{
		{ID: 1, Title: "Biba Embroidered Kurta", Brand: "Biba", Price: 1299, Rating: 4.5, Category: "Women", Sizes: []string{"S", "M", "L"}, Image: "https://images.unsplash.com/photo-1520975698519-2a9f6b4f8a3f?auto=format&fit=crop&w=800&q=60"},
		{ID: 2, Title: "Classic Men's Shirt", Brand: "UrbanVibe", Price: 999, Rating: 4.2, Category: "Men", Sizes: []string{"M", "L", "XL"}, Image: "https://images.unsplash.com/photo-1520975915535-4f1c9aa8b3c0?auto=format&fit=crop&w=800&q=60"},
		{ID: 3, Title: "Casual Hoodie", Brand: "CozyCorner", Price: 1499, Rating: 4.3, Category: "Unisex", Sizes: []string{"M", "L", "XL"}, Image: "https://images.unsplash.com/photo-1607746882042-944635dfe10e?auto=format&fit=crop&w=800&q=60"},
		{ID: 4, Title: "Summer Dress", Brand: "Luna", Price: 1599, Rating: 4.6, Category: "Women", Sizes: []string{"S", "M", "L"}, Image: "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?auto=format&fit=crop&w=800&q=60"},
		{ID: 5, Title: "Denim Jeans", Brand: "DenimPro", Price: 1999, Rating: 4.4, Category: "Men", Sizes: []string{"30", "32", "34", "36"}, Image: "https://images.unsplash.com/photo-1495020689067-958852a7765e?auto=format&fit=crop&w=800&q=60"},
	}
}
