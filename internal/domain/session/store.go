// internal/domain/session/store.go
package session

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/printmart/internal/domain/catalog"
)

var (
	// ErrEmptyCart is returned by Checkout when there is nothing to order
	ErrEmptyCart = errors.New("cart is empty")
	// ErrUnknownShipping is returned by Checkout for a shipping code not on the menu
	ErrUnknownShipping = errors.New("unknown shipping method")
)

// Store is the single authority for one session's identity, cart, reviews
// and order history. Derived views (cart items, totals) are computed on
// every read.
type Store struct {
	mu sync.Mutex

	catalog      *catalog.Catalog
	identity     *Identity
	cart         []CartEntry
	reviews      []Review
	orders       []Order
	nextReviewID int

	taxRate     decimal.Decimal
	orderPrefix string
	orderBase   int
	now         func() time.Time
	listeners   []Listener
}

// Option configures a Store
type Option func(*Store)

// WithTaxRate overrides the sales tax rate
func WithTaxRate(rate decimal.Decimal) Option {
	return func(s *Store) { s.taxRate = rate }
}

// WithOrderNumbering sets the order id prefix and the number the first
// seeded history length is added to
func WithOrderNumbering(prefix string, base int) Option {
	return func(s *Store) {
		s.orderPrefix = prefix
		s.orderBase = base
	}
}

// WithClock sets the time source used to date orders
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithListener registers a listener notified after each committed mutation
func WithListener(l Listener) Option {
	return func(s *Store) { s.listeners = append(s.listeners, l) }
}

// WithHistory replaces the seeded reviews and orders. The review counter
// continues after the number of reviews given.
func WithHistory(reviews []Review, orders []Order) Option {
	return func(s *Store) {
		s.reviews = append([]Review(nil), reviews...)
		s.orders = append([]Order(nil), orders...)
		s.nextReviewID = len(reviews) + 1
	}
}

// NewStore creates a session store over the given catalog, seeded with the
// default reviews and order history
func NewStore(cat *catalog.Catalog, opts ...Option) *Store {
	reviews := SeedReviews()
	s := &Store{
		catalog:      cat,
		cart:         []CartEntry{},
		reviews:      reviews,
		orders:       SeedOrders(),
		nextReviewID: len(reviews) + 1,
		taxRate:      DefaultTaxRate,
		orderPrefix:  "PM-",
		orderBase:    1043,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignIn sets the identity unconditionally, replacing any previous one
func (s *Store) SignIn(name, email string) Identity {
	s.mu.Lock()
	id := Identity{
		Name:              name,
		Email:             email,
		Address:           defaultAddress,
		PreferredMaterial: defaultPreferredMaterial,
		Notifications:     defaultNotifications,
	}
	s.identity = &id
	s.mu.Unlock()

	s.notify(Event{Kind: EventSignedIn})
	return id
}

// SignOut discards the identity and empties the cart. Reviews and orders
// are kept.
func (s *Store) SignOut() {
	s.mu.Lock()
	s.identity = nil
	s.cart = []CartEntry{}
	s.mu.Unlock()

	s.notify(Event{Kind: EventSignedOut})
}

// Identity returns the signed-in identity
func (s *Store) Identity() (Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return Identity{}, false
	}
	return *s.identity, true
}

// UpdateProfile merges the update into the identity. It reports false when
// nobody is signed in.
func (s *Store) UpdateProfile(update ProfileUpdate) (Identity, bool) {
	s.mu.Lock()
	if s.identity == nil {
		s.mu.Unlock()
		return Identity{}, false
	}
	if update.PreferredMaterial != nil {
		s.identity.PreferredMaterial = *update.PreferredMaterial
	}
	if update.Notifications != nil {
		s.identity.Notifications = *update.Notifications
	}
	id := *s.identity
	s.mu.Unlock()

	s.notify(Event{Kind: EventProfileUpdated})
	return id, true
}

// AddToCart increments the product's quantity, inserting it with quantity 1
// when absent. Unknown product ids are ignored.
func (s *Store) AddToCart(productID int) {
	if _, ok := s.catalog.Find(productID); !ok {
		return
	}

	s.mu.Lock()
	found := false
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.cart = append(s.cart, CartEntry{ProductID: productID, Quantity: 1})
	}
	s.mu.Unlock()

	s.notify(Event{Kind: EventCartChanged, ProductID: productID})
}

// RemoveFromCart deletes the product's entry if present
func (s *Store) RemoveFromCart(productID int) {
	s.mu.Lock()
	removed := false
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.notify(Event{Kind: EventCartChanged, ProductID: productID})
	}
}

// UpdateQuantity replaces the quantity of an existing entry. Quantities
// below 1 are rejected as a no-op; use RemoveFromCart to remove.
func (s *Store) UpdateQuantity(productID, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	updated := false
	for i := range s.cart {
		if s.cart[i].ProductID == productID {
			s.cart[i].Quantity = quantity
			updated = true
			break
		}
	}
	s.mu.Unlock()

	if updated {
		s.notify(Event{Kind: EventCartChanged, ProductID: productID})
	}
}

// ClearCart empties the cart
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = []CartEntry{}
	s.mu.Unlock()

	s.notify(Event{Kind: EventCartChanged})
}

// Cart returns the raw cart entries in insertion order
func (s *Store) Cart() []CartEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]CartEntry{}, s.cart...)
}

// CartItems joins each cart entry with its catalog product
func (s *Store) CartItems() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lineItems()
}

// CartTotal returns the sum of price * quantity over the cart
func (s *Store) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	return CartTotalOf(s.lineItems())
}

// TaxRate returns the sales tax rate applied by Summary
func (s *Store) TaxRate() decimal.Decimal {
	return s.taxRate
}

// Summary prices the current cart with the given shipping method.
// It reports false for an unknown method.
func (s *Store) Summary(shippingMethod string) (OrderSummary, bool) {
	method, ok := LookupShipping(shippingMethod)
	if !ok {
		return OrderSummary{}, false
	}
	return Summarize(s.CartTotal(), method.Cost, s.taxRate), true
}

// PlaceOrder turns the cart into a new order at the head of the history
// and empties the cart. An empty cart yields an order with no items.
//
// The order number is the configured base plus the history length, so ids
// stay unique only while history is never shortened.
func (s *Store) PlaceOrder(info ShippingInfo) Order {
	s.mu.Lock()
	order := s.placeOrderLocked(s.lineItems())
	s.mu.Unlock()

	s.notify(Event{Kind: EventOrderPlaced, Order: &order, Shipping: &info})
	return order
}

// Checkout prices the cart with the shipping method named in info and
// places the order in one step, so the summary always matches the order's
// items. The cart is left untouched on error.
func (s *Store) Checkout(info ShippingInfo) (Order, OrderSummary, error) {
	s.mu.Lock()
	items := s.lineItems()
	if len(items) == 0 {
		s.mu.Unlock()
		return Order{}, OrderSummary{}, ErrEmptyCart
	}
	method, ok := LookupShipping(info.Method)
	if !ok {
		s.mu.Unlock()
		return Order{}, OrderSummary{}, fmt.Errorf("%w: %q", ErrUnknownShipping, info.Method)
	}
	summary := Summarize(CartTotalOf(items), method.Cost, s.taxRate)
	order := s.placeOrderLocked(items)
	s.mu.Unlock()

	s.notify(Event{Kind: EventOrderPlaced, Order: &order, Shipping: &info})
	return order, summary, nil
}

// placeOrderLocked must be called with s.mu held
func (s *Store) placeOrderLocked(items []LineItem) Order {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%s (%d)", item.Name(), item.Quantity)
	}

	order := Order{
		ID:     fmt.Sprintf("%s%d", s.orderPrefix, s.orderBase+len(s.orders)),
		Date:   s.now().Format("Jan 2, 2006"),
		Status: OrderStatusProcessing,
		Items:  strings.Join(parts, ", "),
	}
	s.orders = append([]Order{order}, s.orders...)
	s.cart = []CartEntry{}
	return order
}

// Orders returns the order history, most recent first
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Order{}, s.orders...)
}

// AddReview assigns the next review id and appends the review. Product id
// and rating are stored as given.
func (s *Store) AddReview(review Review) Review {
	s.mu.Lock()
	review.ID = s.nextReviewID
	s.nextReviewID++
	s.reviews = append(s.reviews, review)
	s.mu.Unlock()

	s.notify(Event{Kind: EventReviewAdded, ProductID: review.ProductID, Review: &review})
	return review
}

// Reviews returns every review in insertion order
func (s *Store) Reviews() []Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]Review{}, s.reviews...)
}

// ProductReviews returns the reviews of one product in insertion order
func (s *Store) ProductReviews(productID int) []Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []Review{}
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

// lineItems must be called with s.mu held
func (s *Store) lineItems() []LineItem {
	items := make([]LineItem, len(s.cart))
	for i, entry := range s.cart {
		items[i] = LineItem{ProductID: entry.ProductID, Quantity: entry.Quantity}
		if p, ok := s.catalog.Find(entry.ProductID); ok {
			items[i].Product = &p
		}
	}
	return items
}

// CartTotalOf sums the line totals of items
func CartTotalOf(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

func (s *Store) notify(e Event) {
	for _, l := range s.listeners {
		l(e)
	}
}
