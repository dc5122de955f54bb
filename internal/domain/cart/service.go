// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
)

const (
	cartKeyPrefix  = "cart:session:"
	promoKeyPrefix = "cart:promo:"

	// Guest carts expire after a day of inactivity
	cartTTL = 24 * time.Hour
)

// Listener receives a fresh cart snapshot after every mutation. Delivery is
// fire-and-forget: listener errors are not collected and do not affect the
// mutation.
type Listener func(snapshot Snapshot)

// Store maintains the authoritative per-session cart state. Line items and
// the active promo code are persisted through the key-value port after every
// mutation, so state survives process restarts.
type Store struct {
	kv      storage.Store
	catalog *catalog.Service
	log     *logrus.Logger

	mu        sync.RWMutex
	listeners []Listener
}

// NewStore creates a cart store backed by the given key-value store
func NewStore(kv storage.Store, catalogSvc *catalog.Service, log *logrus.Logger) *Store {
	return &Store{
		kv:      kv,
		catalog: catalogSvc,
		log:     log,
	}
}

// Subscribe registers a change listener
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// AddItem adds a (product, size) line to the cart, incrementing the quantity
// when the pairing already exists. The unit price is resolved from the
// matching size option, falling back to the product's base price when the
// size label is unknown. Quantity is not clamped to stock here; only
// UpdateQuantity clamps.
func (s *Store) AddItem(ctx context.Context, sessionID string, productID int, size string, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return err
	}

	price, matched := product.PriceForSize(size)
	if !matched {
		s.log.WithFields(logrus.Fields{
			"product_id": productID,
			"size":       size,
		}).Warn("No size option matched, using base price")
	}

	items, err := s.loadItems(ctx, sessionID)
	if err != nil {
		return err
	}

	found := false
	for i := range items {
		if items[i].ProductID == productID && items[i].Size == size {
			items[i].Quantity += quantity
			found = true
			break
		}
	}

	if !found {
		items = append(items, LineItem{
			ProductID: productID,
			Size:      size,
			Title:     product.Title,
			Image:     product.FirstImage(),
			UnitPrice: price,
			Quantity:  quantity,
			Stock:     product.Stock,
		})
	}

	if err := s.saveItems(ctx, sessionID, items); err != nil {
		return err
	}

	s.notify(ctx, sessionID)
	return nil
}

// RemoveItem deletes the matching line item and reports whether a removal
// occurred. Removing an absent item is a no-op.
func (s *Store) RemoveItem(ctx context.Context, sessionID string, productID int, size string) (bool, error) {
	items, err := s.loadItems(ctx, sessionID)
	if err != nil {
		return false, err
	}

	for i := range items {
		if items[i].ProductID == productID && items[i].Size == size {
			items = append(items[:i], items[i+1:]...)
			if err := s.saveItems(ctx, sessionID, items); err != nil {
				return false, err
			}
			s.notify(ctx, sessionID)
			return true, nil
		}
	}

	return false, nil
}

// UpdateQuantity sets the quantity of an existing line item, clamped to the
// stock snapshot. A quantity of zero or less removes the line.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID string, productID int, size string, quantity int) error {
	if quantity <= 0 {
		_, err := s.RemoveItem(ctx, sessionID, productID, size)
		return err
	}

	items, err := s.loadItems(ctx, sessionID)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ProductID == productID && items[i].Size == size {
			if quantity > items[i].Stock {
				quantity = items[i].Stock
			}
			items[i].Quantity = quantity

			if err := s.saveItems(ctx, sessionID, items); err != nil {
				return err
			}
			s.notify(ctx, sessionID)
			return nil
		}
	}

	return ErrItemNotFound
}

// ClearCart empties the line items and drops the active promo code. Clearing
// an already-empty cart is a no-op.
func (s *Store) ClearCart(ctx context.Context, sessionID string) error {
	if err := s.kv.Delete(ctx, cartKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	if err := s.kv.Delete(ctx, promoKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("failed to clear promo code: %w", err)
	}

	s.notify(ctx, sessionID)
	return nil
}

// ApplyPromoCode validates a code against the registry and activates it,
// replacing any prior code. The cart is left untouched on failure.
func (s *Store) ApplyPromoCode(ctx context.Context, sessionID, code string) (PromoResult, error) {
	promo, ok := LookupPromo(code)
	if !ok {
		return PromoResult{Success: false, Message: "Invalid promo code"}, nil
	}

	items, err := s.loadItems(ctx, sessionID)
	if err != nil {
		return PromoResult{}, err
	}

	subtotal := ComputeTotals(items, nil).Subtotal
	if subtotal.LessThan(promo.MinOrder) {
		return PromoResult{
			Success: false,
			Message: fmt.Sprintf("Minimum order of $%s required for this code", promo.MinOrder.String()),
		}, nil
	}

	if err := s.kv.Set(ctx, promoKeyPrefix+sessionID, []byte(promo.Code), cartTTL); err != nil {
		return PromoResult{}, fmt.Errorf("failed to persist promo code: %w", err)
	}

	s.notify(ctx, sessionID)
	return PromoResult{
		Success: true,
		Message: fmt.Sprintf("Promo code applied! %s%% discount", promo.Percent.String()),
	}, nil
}

// RemovePromoCode clears the active promo code. Idempotent.
func (s *Store) RemovePromoCode(ctx context.Context, sessionID string) error {
	if err := s.kv.Delete(ctx, promoKeyPrefix+sessionID); err != nil {
		return fmt.Errorf("failed to remove promo code: %w", err)
	}

	s.notify(ctx, sessionID)
	return nil
}

// GetCart returns the cart snapshot with freshly computed totals
func (s *Store) GetCart(ctx context.Context, sessionID string) (Snapshot, error) {
	items, err := s.loadItems(ctx, sessionID)
	if err != nil {
		return Snapshot{}, err
	}

	promo := s.loadPromo(ctx, sessionID)
	snapshot := Snapshot{
		SessionID: sessionID,
		Items:     items,
		Totals:    ComputeTotals(items, promo),
	}
	if promo != nil {
		snapshot.PromoCode = promo.Code
	}

	return snapshot, nil
}

// GetTotals recomputes order totals for the current cart state
func (s *Store) GetTotals(ctx context.Context, sessionID string) (Totals, error) {
	snapshot, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return Totals{}, err
	}
	return snapshot.Totals, nil
}

// GetItemCount returns the sum of quantities across line items
func (s *Store) GetItemCount(ctx context.Context, sessionID string) (int, error) {
	items, err := s.loadItems(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := range items {
		count += items[i].Quantity
	}
	return count, nil
}

// loadItems rehydrates the persisted line items. A missing key is an empty
// cart; corrupt JSON is recovered by resetting to an empty cart, never
// surfaced to the caller.
func (s *Store) loadItems(ctx context.Context, sessionID string) ([]LineItem, error) {
	data, err := s.kv.Get(ctx, cartKeyPrefix+sessionID)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []LineItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.log.WithField("session_id", sessionID).WithError(err).
			Warn("Corrupt persisted cart, resetting to empty")
		if delErr := s.kv.Delete(ctx, cartKeyPrefix+sessionID); delErr != nil {
			s.log.WithError(delErr).Warn("Failed to delete corrupt cart key")
		}
		return []LineItem{}, nil
	}

	return items, nil
}

func (s *Store) saveItems(ctx context.Context, sessionID string, items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.kv.Set(ctx, cartKeyPrefix+sessionID, data, cartTTL); err != nil {
		return fmt.Errorf("failed to persist cart: %w", err)
	}
	return nil
}

// loadPromo resolves the persisted promo code against the registry. A stored
// code that is no longer valid is treated as no promo.
func (s *Store) loadPromo(ctx context.Context, sessionID string) *Promo {
	data, err := s.kv.Get(ctx, promoKeyPrefix+sessionID)
	if err != nil {
		return nil
	}

	promo, ok := LookupPromo(string(data))
	if !ok {
		return nil
	}
	return &promo
}

// notify pushes a fresh snapshot to all listeners. Failures to build the
// snapshot are logged and swallowed; notification must never fail a mutation.
func (s *Store) notify(ctx context.Context, sessionID string) {
	s.mu.RLock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.RUnlock()

	if len(listeners) == 0 {
		return
	}

	snapshot, err := s.GetCart(ctx, sessionID)
	if err != nil {
		s.log.WithError(err).Warn("Failed to build cart snapshot for listeners")
		return
	}

	for _, l := range listeners {
		l(snapshot)
	}
}
