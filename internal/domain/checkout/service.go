// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/infrastructure/storage"
)

const (
	lastOrderKeyPrefix   = "order:last:"
	orderRecordKeyPrefix = "order:record:"

	// The confirmation record only needs to survive the redirect, but a
	// generous window covers slow returns to the confirmation page.
	lastOrderTTL = time.Hour

	// Receipt downloads stay available a little longer
	orderRecordTTL = 24 * time.Hour
)

// Flat rates for the premium shipping methods. The standard method is tiered
// on the cart subtotal instead.
var (
	ExpressShippingCost   = decimal.RequireFromString("19.99")
	OvernightShippingCost = decimal.RequireFromString("29.99")
)

// Service places simulated orders. No payment gateway is involved; a
// successful placement snapshots the cart into a one-shot order record and
// empties the cart.
type Service struct {
	kv    storage.Store
	carts *cart.Store
	log   *logrus.Logger
}

// NewService creates a checkout service
func NewService(kv storage.Store, carts *cart.Store, log *logrus.Logger) *Service {
	return &Service{
		kv:    kv,
		carts: carts,
		log:   log,
	}
}

// PlaceOrder validates the cart, prices the selected shipping method,
// persists the order as a one-shot record and clears the cart. The cart's
// own totals assume standard shipping, so shipping and tax are recomputed
// here for the chosen method.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, customer CustomerInfo, shipping ShippingInfo, payment PaymentInfo) (*Order, error) {
	snapshot, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	shipping.Method = ParseShippingMethod(string(shipping.Method))

	subtotal := snapshot.Totals.Subtotal
	discount := snapshot.Totals.Discount
	shippingFee := MethodShippingCost(shipping.Method, subtotal)
	tax := subtotal.Sub(discount).Add(shippingFee).Mul(cart.TaxRate).Round(2)
	total := subtotal.Sub(discount).Add(shippingFee).Add(tax)

	order := &Order{
		OrderNumber: generateOrderNumber(),
		SessionID:   sessionID,
		PlacedAt:    time.Now().UTC(),
		Customer:    customer,
		Shipping:    shipping,
		Payment:     payment,
		Items:       snapshot.Items,
		Subtotal:    subtotal,
		Discount:    discount,
		ShippingFee: shippingFee,
		Tax:         tax,
		Total:       total,
		Status:      "confirmed",
	}

	data, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order: %w", err)
	}
	if err := s.kv.Set(ctx, lastOrderKeyPrefix+sessionID, data, lastOrderTTL); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	if err := s.kv.Set(ctx, orderRecordKeyPrefix+order.OrderNumber, data, orderRecordTTL); err != nil {
		return nil, fmt.Errorf("failed to persist order record: %w", err)
	}

	if err := s.carts.ClearCart(ctx, sessionID); err != nil {
		s.log.WithField("session_id", sessionID).WithError(err).
			Warn("Failed to clear cart after order placement")
	}

	s.log.WithFields(logrus.Fields{
		"order_number": order.OrderNumber,
		"item_count":   len(order.Items),
		"total":        order.Total.String(),
	}).Info("Order placed")

	return order, nil
}

// ConsumeLastOrder returns the session's one-shot order record and deletes
// it. A second call for the same order returns ErrNoRecentOrder.
func (s *Service) ConsumeLastOrder(ctx context.Context, sessionID string) (*Order, error) {
	key := lastOrderKeyPrefix + sessionID

	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, ErrNoRecentOrder
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	var order Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}

	if err := s.kv.Delete(ctx, key); err != nil {
		s.log.WithField("session_id", sessionID).WithError(err).
			Warn("Failed to delete consumed order record")
	}

	return &order, nil
}

// GetOrder looks up a placed order by its order number. Unlike the one-shot
// confirmation record this does not consume anything, so receipts can be
// downloaded more than once.
func (s *Service) GetOrder(ctx context.Context, orderNumber string) (*Order, error) {
	data, err := s.kv.Get(ctx, orderRecordKeyPrefix+orderNumber)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return nil, ErrNoRecentOrder
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	var order Order
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}

	return &order, nil
}

// MethodShippingCost prices a shipping method against the cart subtotal. Any
// method ships free once the subtotal clears the free-shipping threshold;
// the standard method falls back to the usual subtotal tiers.
func MethodShippingCost(method ShippingMethod, subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(cart.FreeShippingThreshold) {
		return decimal.Zero
	}

	switch method {
	case ShippingExpress:
		return ExpressShippingCost
	case ShippingOvernight:
		return OvernightShippingCost
	default:
		return cart.ShippingCost(subtotal)
	}
}

// generateOrderNumber builds an order reference of the form
// LUM-<6 digits>-<4 base36 chars>, e.g. LUM-381204-K7QX
func generateOrderNumber() string {
	millis := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}

	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	var suffix strings.Builder
	for i := 0; i < 4; i++ {
		suffix.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}

	return fmt.Sprintf("LUM-%s-%s", millis, suffix.String())
}
