// internal/domain/catalog/filter.go
package catalog

import (
	"sort"
	"strings"
)

// PageSize is the number of products per shop page slice ("load more" step)
const PageSize = 12

// SortKey selects the ordering applied after filtering
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
	SortName      SortKey = "name"
)

// ParseSortKey maps a query value to a SortKey, defaulting to featured
func ParseSortKey(value string) SortKey {
	switch SortKey(value) {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest, SortName:
		return SortKey(value)
	default:
		return SortFeatured
	}
}

// Criteria describes the shop page filters. All criteria combine with AND;
// values within a single criterion combine with OR. Zero values disable the
// corresponding filter.
type Criteria struct {
	Query      string
	Categories []string
	Fragrances []string
	MinRating  float64
	InStock    bool
}

// Filter returns the products matching every active criterion, preserving
// catalog order
func Filter(products []Product, c Criteria) []Product {
	filtered := make([]Product, 0, len(products))
	for i := range products {
		if matches(&products[i], c) {
			filtered = append(filtered, products[i])
		}
	}
	return filtered
}

func matches(p *Product, c Criteria) bool {
	if c.Query != "" && !matchesQuery(p, c.Query) {
		return false
	}
	if len(c.Categories) > 0 && !matchesCategory(p, c.Categories) {
		return false
	}
	if len(c.Fragrances) > 0 && !containsFold(c.Fragrances, p.FragranceFamily) {
		return false
	}
	if c.MinRating > 0 && p.Rating < c.MinRating {
		return false
	}
	if c.InStock && p.Stock <= 0 {
		return false
	}
	return true
}

// matchesQuery performs a case-insensitive substring search across title,
// description, tags, fragrance notes and fragrance family
func matchesQuery(p *Product, query string) bool {
	q := strings.ToLower(query)

	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, note := range p.FragranceNotes {
		if strings.Contains(strings.ToLower(note), q) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.FragranceFamily), q)
}

// matchesCategory handles the shop page's virtual categories: "all" matches
// everything, "new" matches new arrivals, "bestsellers" matches featured
// products; anything else matches the category field exactly
func matchesCategory(p *Product, categories []string) bool {
	for _, category := range categories {
		switch strings.ToLower(category) {
		case "all":
			return true
		case "new":
			if p.NewArrival {
				return true
			}
		case "bestsellers":
			if p.Featured {
				return true
			}
		default:
			if strings.EqualFold(p.Category, category) {
				return true
			}
		}
	}
	return false
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}

// Sort returns a sorted copy of products. Sorts are stable so that ties keep
// catalog order.
func Sort(products []Product, key SortKey) []Product {
	sorted := make([]Product, len(products))
	copy(sorted, products)

	switch key {
	case SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.LessThan(sorted[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Price.GreaterThan(sorted[j].Price)
		})
	case SortRating:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Rating > sorted[j].Rating
		})
	case SortNewest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].NewArrival && !sorted[j].NewArrival
		})
	case SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Title < sorted[j].Title
		})
	default: // featured first, ties broken by descending rating
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Featured != sorted[j].Featured {
				return sorted[i].Featured
			}
			return sorted[i].Rating > sorted[j].Rating
		})
	}

	return sorted
}

// Paginate slices one fixed-size page out of products. Pages start at 1; an
// out-of-range page yields an empty slice. hasMore reports whether further
// pages remain for the "load more" control.
func Paginate(products []Product, page int) (items []Product, hasMore bool) {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	if start >= len(products) {
		return []Product{}, false
	}

	end := start + PageSize
	if end > len(products) {
		end = len(products)
	}

	return products[start:end], end < len(products)
}
