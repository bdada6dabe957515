package repository

import (
	"math"
	"net/url"
	"time"

	"go-storefront/models"
	"go-storefront/store"
)

const productsCollection = "products"

// Products exposes catalog item mutations over the products collection.
type Products struct {
	store store.Store
}

func NewProducts(s store.Store) *Products {
	return &Products{store: s}
}

// Create adds a catalog item. Name, price and category are required; a
// missing image falls back to a generated placeholder keyed by the name.
func (r *Products) Create(name string, price float64, category, image, description string) (models.Product, error) {
	if name == "" || category == "" || price <= 0 {
		return models.Product{}, &ValidationError{Message: "Required fields missing"}
	}
	if image == "" {
		image = placeholderImage(name)
	}
	var product models.Product
	err := r.store.Update(productsCollection, func() error {
		var products []models.Product
		if err := r.store.Load(productsCollection, &products); err != nil {
			return err
		}
		var maxID int64
		for _, p := range products {
			if p.ID > maxID {
				maxID = p.ID
			}
		}
		product = models.Product{
			ID:          nextID(maxID),
			Name:        name,
			Price:       price,
			Category:    category,
			Image:       image,
			Description: description,
			Rating:      0,
			Reviews:     []models.Review{},
		}
		products = append(products, product)
		return r.store.Persist(productsCollection, products)
	})
	return product, err
}

// ProductPatch carries the optional edit fields. Matching the long-standing
// API behavior, a supplied empty string or zero price means "leave the field
// alone".
type ProductPatch struct {
	Name        *string
	Price       *float64
	Category    *string
	Description *string
}

// Update applies the patch to the catalog item and returns the result.
func (r *Products) Update(id int64, patch ProductPatch) (models.Product, error) {
	var product models.Product
	err := r.store.Update(productsCollection, func() error {
		var products []models.Product
		if err := r.store.Load(productsCollection, &products); err != nil {
			return err
		}
		idx := findProduct(products, id)
		if idx < 0 {
			return ErrNotFound
		}
		p := &products[idx]
		if patch.Name != nil && *patch.Name != "" {
			p.Name = *patch.Name
		}
		if patch.Price != nil && *patch.Price != 0 {
			p.Price = *patch.Price
		}
		if patch.Category != nil && *patch.Category != "" {
			p.Category = *patch.Category
		}
		if patch.Description != nil && *patch.Description != "" {
			p.Description = *patch.Description
		}
		product = *p
		return r.store.Persist(productsCollection, products)
	})
	return product, err
}

// Delete removes the catalog item if present. A missing id is not an error.
func (r *Products) Delete(id int64) error {
	return r.store.Update(productsCollection, func() error {
		var products []models.Product
		if err := r.store.Load(productsCollection, &products); err != nil {
			return err
		}
		kept := make([]models.Product, 0, len(products))
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return r.store.Persist(productsCollection, kept)
	})
}

// AddReview appends a review to the item and recomputes its rating as the
// mean of all review ratings rounded to one decimal place.
func (r *Products) AddReview(id int64, userName string, rating float64, comment string) (models.Review, error) {
	var review models.Review
	err := r.store.Update(productsCollection, func() error {
		var products []models.Product
		if err := r.store.Load(productsCollection, &products); err != nil {
			return err
		}
		idx := findProduct(products, id)
		if idx < 0 {
			return ErrNotFound
		}
		p := &products[idx]
		var maxID int64
		for _, rv := range p.Reviews {
			if rv.ID > maxID {
				maxID = rv.ID
			}
		}
		review = models.Review{
			ID:       nextID(maxID),
			UserName: userName,
			Rating:   rating,
			Comment:  comment,
			Date:     time.Now().Format("1/2/2006"),
		}
		p.Reviews = append(p.Reviews, review)
		p.Rating = meanRating(p.Reviews)
		return r.store.Persist(productsCollection, products)
	})
	return review, err
}

// Get returns the catalog item with the given id.
func (r *Products) Get(id int64) (models.Product, error) {
	var products []models.Product
	if err := r.store.Load(productsCollection, &products); err != nil {
		return models.Product{}, err
	}
	if idx := findProduct(products, id); idx >= 0 {
		return products[idx], nil
	}
	return models.Product{}, ErrNotFound
}

// List returns the full catalog in insertion order.
func (r *Products) List() ([]models.Product, error) {
	var products []models.Product
	if err := r.store.Load(productsCollection, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func meanRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0.0
	for _, rv := range reviews {
		sum += rv.Rating
	}
	return math.Round(sum/float64(len(reviews))*10) / 10
}

func findProduct(products []models.Product, id int64) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}

func placeholderImage(name string) string {
	return "https://via.placeholder.com/300x200?text=" + url.QueryEscape(name)
}
