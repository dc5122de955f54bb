// internal/domain/catalog/service.go
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
)

//go:embed fallback_products.json
var fallbackDocument []byte

// Service owns the in-memory product catalog. The catalog is loaded once at
// startup from the configured source URL; any fetch or parse failure falls
// back transparently to the embedded document, which carries the identical
// schema. The catalog is read-only after Load.
type Service struct {
	config *config.Config
	log    *logrus.Logger
	client *http.Client

	mu           sync.RWMutex
	products     []Product
	byID         map[int]*Product
	fromFallback bool
}

// NewService creates a new catalog service
func NewService(cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		config: cfg,
		log:    log,
		client: &http.Client{Timeout: cfg.Catalog.FetchTimeout},
	}
}

// Load populates the catalog. A remote failure is never fatal: the embedded
// fallback document takes over and the switch is logged.
func (s *Service) Load(ctx context.Context) error {
	if url := s.config.Catalog.SourceURL; url != "" {
		products, err := s.fetchRemote(ctx, url)
		if err == nil {
			s.install(products, false)
			s.log.WithField("count", len(products)).Info("Catalog loaded from source URL")
			return nil
		}
		s.log.WithError(err).Warn("Catalog fetch failed, using embedded fallback")
	}

	products, err := parseDocument(fallbackDocument)
	if err != nil {
		return fmt.Errorf("failed to parse embedded catalog: %w", err)
	}
	s.install(products, true)
	s.log.WithField("count", len(products)).Info("Catalog loaded from embedded fallback")
	return nil
}

func (s *Service) fetchRemote(ctx context.Context, url string) ([]Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog source returned status %d", resp.StatusCode)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog document: %w", err)
	}
	if len(doc.Products) == 0 {
		return nil, fmt.Errorf("catalog document contains no products")
	}

	return doc.Products, nil
}

func parseDocument(data []byte) ([]Product, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Products, nil
}

func (s *Service) install(products []Product, fromFallback bool) {
	byID := make(map[int]*Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	s.mu.Lock()
	s.products = products
	s.byID = byID
	s.fromFallback = fromFallback
	s.mu.Unlock()
}

// Products returns the full catalog in document order
func (s *Service) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// GetProduct returns the product with the given id
func (s *Service) GetProduct(id int) (*Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// UsingFallback reports whether the embedded document is serving the catalog
func (s *Service) UsingFallback() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fromFallback
}

// FacetCount is a filter facet value with the number of matching products
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// FragranceFamilies returns the distinct fragrance families with counts,
// sorted alphabetically
func (s *Service) FragranceFamilies() []FacetCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	for i := range s.products {
		family := strings.ToLower(s.products[i].FragranceFamily)
		if family != "" {
			counts[family]++
		}
	}

	facets := make([]FacetCount, 0, len(counts))
	for family, count := range counts {
		facets = append(facets, FacetCount{Value: family, Count: count})
	}
	sort.Slice(facets, func(i, j int) bool { return facets[i].Value < facets[j].Value })

	return facets
}

// CategoryCounts returns the shop page's category facets
func (s *Service) CategoryCounts() []FacetCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := len(s.products)
	newArrivals := 0
	bestsellers := 0
	for i := range s.products {
		if s.products[i].NewArrival {
			newArrivals++
		}
		if s.products[i].Featured {
			bestsellers++
		}
	}

	return []FacetCount{
		{Value: "all", Count: all},
		{Value: "new", Count: newArrivals},
		{Value: "bestsellers", Count: bestsellers},
	}
}
