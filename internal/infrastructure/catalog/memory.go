package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/shofit/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory product catalog. It holds the demo
// garments only; nothing is persisted and nothing expires.
type MemoryStore struct {
	products map[string]domain.Product
	order    []string
	mutex    sync.RWMutex
}

// NewMemoryStore creates a catalog pre-seeded with the demo products.
func NewMemoryStore() *MemoryStore {
	store := &MemoryStore{
		products: make(map[string]domain.Product),
	}
	for _, p := range seedProducts {
		store.products[p.ID] = p
		store.order = append(store.order, p.ID)
	}
	return store
}

// List returns products matching the filter, in catalog order. Category
// matching is a case-insensitive equality check; search is a substring
// match over name and brand.
func (s *MemoryStore) List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	results := []domain.Product{}
	for _, id := range s.order {
		p := s.products[id]
		if !matchesFilter(p, filter) {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}

// Get returns a single product by id.
func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	p, exists := s.products[id]
	if !exists {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

// Size returns the number of products in the catalog.
func (s *MemoryStore) Size() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.products)
}

func matchesFilter(p domain.Product, filter domain.ProductFilter) bool {
	if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
		return false
	}
	if filter.MinPrice != nil && p.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Brand), needle) {
			return false
		}
	}
	return true
}

// seedProducts is the built-in demo catalog.
var seedProducts = []domain.Product{
	{
		ID:          "1",
		Name:        "Cotton Linen Shirt",
		Price:       89.99,
		Description: "Premium cotton-linen blend shirt with a relaxed fit. Perfect for casual occasions and warm weather. Features include button-down collar, chest pocket, and breathable fabric.",
		Category:    "Shirts",
		Brand:       "SHOFIT Essentials",
		Rating:      4.5,
		Reviews:     128,
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=800&h=1000&fit=crop",
			"https://images.unsplash.com/photo-1596755094629-2019c1b84149?w=800&h=1000&fit=crop",
			"https://images.unsplash.com/photo-1596755093369-786ffb9c3ff7?w=800&h=1000&fit=crop",
		},
		AvailableColors: []string{"White", "Black", "Navy", "Gray"},
		AvailableSizes:  []string{"XS", "S", "M", "L", "XL", "XXL"},
	},
	{
		ID:          "2",
		Name:        "Classic Denim Jacket",
		Price:       129.99,
		Description: "Timeless denim jacket made from premium quality fabric. Features classic design with button closure, chest pockets, and adjustable cuffs. Perfect layering piece for any season.",
		Category:    "Jackets",
		Brand:       "SHOFIT Essentials",
		Rating:      4.7,
		Reviews:     95,
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=800&h=1000&fit=crop",
			"https://images.unsplash.com/photo-1559983645-e1b9fc2eef0f?w=800&h=1000&fit=crop",
			"https://images.unsplash.com/photo-1552374196-1ab2ff8a3e14?w=800&h=1000&fit=crop",
		},
		AvailableColors: []string{"Blue", "Black", "Light Blue"},
		AvailableSizes:  []string{"XS", "S", "M", "L", "XL", "XXL"},
	},
	{
		ID:          "3",
		Name:        "Summer Floral Dress",
		Price:       79.99,
		Description: "Vibrant floral dress perfect for summer adventures. Made from lightweight, breathable fabric with a flattering A-line silhouette. Features a comfortable fit and easy-care material.",
		Category:    "Dresses",
		Brand:       "SHOFIT Essentials",
		Rating:      4.3,
		Reviews:     156,
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1595777457583-95e059d581b8?w=800&h=1000&fit=crop",
			"https://images.unsplash.com/photo-1612336307429-8a88e8d08dbb?w=800&h=1000&fit=crop",
			"https://images.unsplash.com/photo-1557804506-669714d2e9d8?w=800&h=1000&fit=crop",
		},
		AvailableColors: []string{"Floral", "White", "Pink"},
		AvailableSizes:  []string{"XS", "S", "M", "L", "XL"},
	},
	{
		ID:          "4",
		Name:        "Slim Fit Chinos",
		Price:       69.99,
		Description: "Smart casual chinos with a modern slim fit. Made from breathable cotton blend fabric with stretch for comfort. Perfect for both office and weekend wear.",
		Category:    "Pants",
		Brand:       "SHOFIT Essentials",
		Rating:      4.4,
		Reviews:     82,
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1624378439575-d8705ad7ae80?w=800&h=1000&fit=crop",
			"https://images.unsplash.com/photo-1473080169841-fb7fb126e75f?w=800&h=1000&fit=crop",
			"https://images.unsplash.com/photo-1542272604-787c62d465d1?w=800&h=1000&fit=crop",
		},
		AvailableColors: []string{"Khaki", "Navy", "Black", "Gray"},
		AvailableSizes:  []string{"28", "30", "32", "34", "36", "38"},
	},
	{
		ID:          "5",
		Name:        "Wool Blend Coat",
		Price:       199.99,
		Description: "Elegant wool blend coat for the colder months. Features a tailored silhouette, functional pockets, and premium wool blend fabric. A timeless piece for any wardrobe.",
		Category:    "Coats",
		Brand:       "SHOFIT Essentials",
		Rating:      4.8,
		Reviews:     67,
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1539533018447-63fcce2678e3?w=800&h=1000&fit=crop",
			"https://images.unsplash.com/photo-1544082521-9ffba9628042?w=800&h=1000&fit=crop",
			"https://images.unsplash.com/photo-1539533057671-d7fbf1f42799?w=800&h=1000&fit=crop",
		},
		AvailableColors: []string{"Black", "Gray", "Camel", "Burgundy"},
		AvailableSizes:  []string{"XS", "S", "M", "L", "XL"},
	},
	{
		ID:          "6",
		Name:        "Casual Sneakers",
		Price:       89.99,
		Description: "Comfortable casual sneakers for everyday wear. Features cushioned sole for all-day comfort, durable rubber outsole, and modern design. Available in multiple colors.",
		Category:    "Shoes",
		Brand:       "SHOFIT Essentials",
		Rating:      4.6,
		Reviews:     234,
		InStock:     true,
		Images: []string{
			"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=800&h=1000&fit=crop",
			"https://images.unsplash.com/photo-1525966222134-fcaa40579c4f?w=800&h=1000&fit=crop",
			"https://images.unsplash.com/photo-1540212647868-7aea8d24f715?w=800&h=1000&fit=crop",
		},
		AvailableColors: []string{"White", "Black", "Gray", "Navy"},
		AvailableSizes:  []string{"5", "6", "7", "8", "9", "10", "11", "12"},
	},
}
