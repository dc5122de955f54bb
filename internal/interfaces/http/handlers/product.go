// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	catalogService *catalog.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService *catalog.Service) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
	}
}

// GetProducts handles GET /products. The filter, sort and pagination
// pipeline runs over the in-memory catalog on every request.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	criteria := catalog.Criteria{
		Query:      c.Query("search"),
		Categories: c.QueryArray("category"),
		Fragrances: c.QueryArray("fragrance"),
	}

	if minRating := c.Query("min_rating"); minRating != "" {
		rating, err := strconv.ParseFloat(minRating, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid min_rating value",
			})
			return
		}
		criteria.MinRating = rating
	}

	if inStock := c.Query("in_stock"); inStock != "" {
		criteria.InStock = inStock == "true" || inStock == "1"
	}

	page := 1
	if pageParam := c.Query("page"); pageParam != "" {
		parsed, err := strconv.Atoi(pageParam)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid page value",
			})
			return
		}
		page = parsed
	}

	filtered := catalog.Filter(h.catalogService.Products(), criteria)
	sorted := catalog.Sort(filtered, catalog.ParseSortKey(c.Query("sort")))
	items, hasMore := catalog.Paginate(sorted, page)

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data": gin.H{
			"products": items,
			"total":    len(sorted),
			"page":     page,
			"has_more": hasMore,
		},
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	product, err := h.catalogService.GetProduct(id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}

// GetFacets handles GET /products/facets, returning the filter counts the
// shop page renders next to each option
func (h *ProductHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Facets retrieved successfully",
		"data": gin.H{
			"fragrance_families": h.catalogService.FragranceFamilies(),
			"categories":         h.catalogService.CategoryCounts(),
			"using_fallback":     h.catalogService.UsingFallback(),
		},
	})
}
