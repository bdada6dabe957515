package repository

import "go-storefront/models"

// EnsureSeeded writes the starter catalog on first boot. A collection that
// was deliberately emptied is left alone; only a never-persisted products
// collection is seeded.
func (r *Products) EnsureSeeded() (bool, error) {
	if r.store.Exists(productsCollection) {
		return false, nil
	}
	err := r.store.Update(productsCollection, func() error {
		return r.store.Persist(productsCollection, starterCatalog())
	})
	return err == nil, err
}

// EnsureInitialized writes an empty users collection on first boot so the
// data directory starts out with every collection file in place.
func (r *Users) EnsureInitialized() error {
	if r.store.Exists(usersCollection) {
		return nil
	}
	return r.store.Update(usersCollection, func() error {
		return r.store.Persist(usersCollection, []models.User{})
	})
}

// EnsureInitialized writes an empty orders collection on first boot.
func (r *Orders) EnsureInitialized() error {
	if r.store.Exists(ordersCollection) {
		return nil
	}
	return r.store.Update(ordersCollection, func() error {
		return r.store.Persist(ordersCollection, []models.Order{})
	})
}

func starterCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Nike Air Max", Price: 120, Category: "Shoes", Image: "https://via.placeholder.com/300x200/6c00ff/ffffff?text=Nike+Air+Max", Description: "Premium running shoes with air cushioning for maximum comfort.", Rating: 4.5, Reviews: []models.Review{}},
		{ID: 2, Name: "Leather Jacket", Price: 250, Category: "Clothing", Image: "https://via.placeholder.com/300x200/ff006e/ffffff?text=Leather+Jacket", Description: "Stylish genuine leather jacket for all occasions.", Rating: 4.2, Reviews: []models.Review{}},
		{ID: 3, Name: "Smart Watch", Price: 199, Category: "Electronics", Image: "https://via.placeholder.com/300x200/ff9500/ffffff?text=Smart+Watch", Description: "Feature-packed smartwatch with health tracking.", Rating: 4.7, Reviews: []models.Review{}},
		{ID: 4, Name: "Backpack", Price: 75, Category: "Accessories", Image: "https://via.placeholder.com/300x200/00c896/ffffff?text=Backpack", Description: "Durable travel backpack with multiple compartments.", Rating: 4.3, Reviews: []models.Review{}},
		{ID: 5, Name: "Sunglasses", Price: 60, Category: "Accessories", Image: "https://via.placeholder.com/300x200/6c00ff/ffffff?text=Sunglasses", Description: "UV400 protected polarized sunglasses.", Rating: 4.0, Reviews: []models.Review{}},
		{ID: 6, Name: "Headphones", Price: 150, Category: "Electronics", Image: "https://via.placeholder.com/300x200/ff006e/ffffff?text=Headphones", Description: "Noise cancelling wireless headphones.", Rating: 4.6, Reviews: []models.Review{}},
		{ID: 7, Name: "Running Shoes", Price: 95, Category: "Shoes", Image: "https://via.placeholder.com/300x200/ff9500/ffffff?text=Running+Shoes", Description: "Lightweight running shoes for peak performance.", Rating: 4.4, Reviews: []models.Review{}},
		{ID: 8, Name: "Denim Jeans", Price: 80, Category: "Clothing", Image: "https://via.placeholder.com/300x200/00c896/ffffff?text=Denim+Jeans", Description: "Classic slim fit denim jeans.", Rating: 4.1, Reviews: []models.Review{}},
	}
}
