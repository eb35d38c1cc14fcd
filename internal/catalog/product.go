package catalog

import (
	"strings"

	"github.com/imrishuroy/storefront/internal/apperr"
)

// DefaultCategory is assigned when a product is created without one.
const DefaultCategory = "Uncategorized"

// Product is a purchasable catalog record. Price is in major units (rupees).
type Product struct {
	ID       int64    `json:"id" dynamodbav:"id"`
	Title    string   `json:"title" dynamodbav:"title"`
	Brand    string   `json:"brand" dynamodbav:"brand"`
	Price    float64  `json:"price" dynamodbav:"price"`
	Rating   float64  `json:"rating" dynamodbav:"rating"`
	Category string   `json:"category" dynamodbav:"category"`
	Sizes    []string `json:"sizes" dynamodbav:"sizes"`
	Image    string   `json:"image" dynamodbav:"image"`
}

// NewProduct holds the fields of a create request. Nil Price means absent.
type NewProduct struct {
	Title    string
	Brand    string
	Price    *float64
	Rating   *float64
	Category string
	Sizes    []string
	Image    string
}

// Patch lists the fields to replace on update; nil fields are left as they are.
// Sizes, when present, replaces the whole list.
type Patch struct {
	Title    *string
	Brand    *string
	Price    *float64
	Rating   *float64
	Category *string
	Sizes    *[]string
	Image    *string
}

// build validates in and applies create defaults.
func build(id int64, in NewProduct) (Product, error) {
	if strings.TrimSpace(in.Title) == "" || in.Price == nil {
		return Product{}, apperr.Validation("title and price required")
	}
	if err := checkPrice(*in.Price); err != nil {
		return Product{}, err
	}
	p := Product{
		ID:       id,
		Title:    in.Title,
		Brand:    in.Brand,
		Price:    *in.Price,
		Category: in.Category,
		Sizes:    cloneSizes(in.Sizes),
		Image:    in.Image,
	}
	if in.Rating != nil {
		if err := checkRating(*in.Rating); err != nil {
			return Product{}, err
		}
		p.Rating = *in.Rating
	}
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	return p, nil
}

// apply returns p with every field present in patch replaced. The id never changes.
func apply(p Product, patch Patch) (Product, error) {
	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return Product{}, apperr.Validation("title must not be empty")
		}
		p.Title = *patch.Title
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Price != nil {
		if err := checkPrice(*patch.Price); err != nil {
			return Product{}, err
		}
		p.Price = *patch.Price
	}
	if patch.Rating != nil {
		if err := checkRating(*patch.Rating); err != nil {
			return Product{}, err
		}
		p.Rating = *patch.Rating
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Sizes != nil {
		p.Sizes = cloneSizes(*patch.Sizes)
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	return p, nil
}

func checkPrice(price float64) error {
	if price <= 0 {
		return apperr.Validation("price must be positive")
	}
	return nil
}

func checkRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return apperr.Validation("rating must be between 0 and 5")
	}
	return nil
}

// cloneSizes copies sizes so stored records never alias caller slices; nil becomes empty.
func cloneSizes(sizes []string) []string {
	out := make([]string, len(sizes))
	copy(out, sizes)
	return out
}

func (p Product) clone() Product {
	p.Sizes = cloneSizes(p.Sizes)
	return p
}
