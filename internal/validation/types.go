package validation

// CreateProductRequest is the payload for POST /api/admin/products.
type CreateProductRequest struct {
	Title    string   `json:"title" validate:"required"`
	Brand    string   `json:"brand"`
	Price    *Number  `json:"price" validate:"required,gt=0"`
	Rating   *Number  `json:"rating" validate:"omitempty,min=0,max=5"`
	Category string   `json:"category"`
	Sizes    []string `json:"sizes"`
	Image    string   `json:"image"`
}

// UpdateProductRequest is the payload for PUT /api/admin/products/:id.
// Nil fields are absent from the patch and left untouched.
type UpdateProductRequest struct {
	Title    *string   `json:"title"`
	Brand    *string   `json:"brand"`
	Price    *Number   `json:"price"`
	Rating   *Number   `json:"rating"`
	Category *string   `json:"category"`
	Sizes    *[]string `json:"sizes"`
	Image    *string   `json:"image"`
}

// CheckoutItem is one cart line submitted for checkout.
type CheckoutItem struct {
	ID       int64   `json:"id"`
	Title    string  `json:"title" validate:"required"`
	Price    float64 `json:"price" validate:"gt=0"`
	Quantity int64   `json:"quantity" validate:"min=0"` // 0 means 1
}

// CheckoutRequest is the payload for POST /api/create-checkout-session.
type CheckoutRequest struct {
	Items      []CheckoutItem `json:"items" validate:"required,min=1,dive"`
	SuccessURL string         `json:"successUrl" validate:"omitempty,url"`
	CancelURL  string         `json:"cancelUrl" validate:"omitempty,url"`
}
