package session

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/printmart/internal/domain/catalog"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC)
}

func newTestStore(opts ...Option) *Store {
	return NewStore(catalog.Default(), append([]Option{WithClock(fixedClock)}, opts...)...)
}

func TestExampleScenario(t *testing.T) {
	s := newTestStore()

	s.AddToCart(1)
	s.AddToCart(1)
	s.AddToCart(3)

	assert.Equal(t, []CartEntry{
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 1},
	}, s.Cart())
	assert.Equal(t, "48.00", s.CartTotal().StringFixed(2))
}

func TestAddToCartCountsCalls(t *testing.T) {
	for _, n := range []int{1, 2, 5, 17} {
		s := newTestStore()
		for i := 0; i < n; i++ {
			s.AddToCart(2)
		}
		assert.Equal(t, []CartEntry{{ProductID: 2, Quantity: n}}, s.Cart())
	}
}

func TestAddToCartIgnoresUnknownProduct(t *testing.T) {
	s := newTestStore()

	s.AddToCart(99)
	s.AddToCart(-1)

	assert.Empty(t, s.Cart())
}

func TestUpdateQuantity(t *testing.T) {
	s := newTestStore()
	s.AddToCart(1)

	s.UpdateQuantity(1, 4)
	assert.Equal(t, []CartEntry{{ProductID: 1, Quantity: 4}}, s.Cart())

	s.UpdateQuantity(1, 0)
	s.UpdateQuantity(1, -1)
	assert.Equal(t, []CartEntry{{ProductID: 1, Quantity: 4}}, s.Cart())

	s.UpdateQuantity(2, 3)
	assert.Equal(t, []CartEntry{{ProductID: 1, Quantity: 4}}, s.Cart())
}

func TestRemoveThenAddResetsQuantity(t *testing.T) {
	s := newTestStore()
	s.AddToCart(3)
	s.UpdateQuantity(3, 9)

	s.RemoveFromCart(3)
	assert.Empty(t, s.Cart())

	s.RemoveFromCart(3)
	s.AddToCart(3)
	assert.Equal(t, []CartEntry{{ProductID: 3, Quantity: 1}}, s.Cart())
}

func TestCartTotalIsNeverStale(t *testing.T) {
	s := newTestStore()

	steps := []struct {
		apply func()
		want  string
	}{
		{func() { s.AddToCart(2) }, "32.00"},
		{func() { s.AddToCart(1) }, "50.00"},
		{func() { s.UpdateQuantity(2, 3) }, "114.00"},
		{func() { s.RemoveFromCart(1) }, "96.00"},
		{func() { s.ClearCart() }, "0.00"},
	}

	for _, step := range steps {
		step.apply()
		assert.Equal(t, step.want, s.CartTotal().StringFixed(2))

		sum := decimal.Zero
		for _, item := range s.CartItems() {
			sum = sum.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		assert.True(t, sum.Equal(s.CartTotal()))
	}
}

func TestCartItemsWithMissingProduct(t *testing.T) {
	s := newTestStore()
	s.AddToCart(1)
	s.mu.Lock()
	s.cart = append(s.cart, CartEntry{ProductID: 404, Quantity: 2})
	s.mu.Unlock()

	items := s.CartItems()
	require.Len(t, items, 2)
	assert.Nil(t, items[1].Product)
	assert.Equal(t, "", items[1].Name())
	assert.True(t, items[1].LineTotal().IsZero())
	assert.Equal(t, "18.00", s.CartTotal().StringFixed(2))

	order := s.PlaceOrder(ShippingInfo{})
	assert.Equal(t, "Modular Desk Organizer (1),  (2)", order.Items)
}

func TestPlaceOrder(t *testing.T) {
	s := newTestStore()
	s.AddToCart(1)
	s.AddToCart(1)
	s.AddToCart(3)

	order := s.PlaceOrder(ShippingInfo{FullName: "Alex Rivera", City: "San Jose"})

	assert.Equal(t, Order{
		ID:     "PM-1046",
		Date:   "Mar 4, 2026",
		Status: OrderStatusProcessing,
		Items:  "Modular Desk Organizer (2), Mechanical Keycap Set (3 pack) (1)",
	}, order)
	assert.Empty(t, s.Cart())

	orders := s.Orders()
	require.Len(t, orders, 4)
	assert.Equal(t, order, orders[0])
	assert.Equal(t, "PM-1042", orders[1].ID)
}

func TestPlaceOrderOnEmptyCart(t *testing.T) {
	s := newTestStore(WithHistory(nil, nil))

	first := s.PlaceOrder(ShippingInfo{})
	second := s.PlaceOrder(ShippingInfo{})

	assert.Equal(t, "PM-1043", first.ID)
	assert.Equal(t, "", first.Items)
	assert.Equal(t, "PM-1044", second.ID)
	assert.Equal(t, []Order{second, first}, s.Orders())
}

func TestOrderNumberingOption(t *testing.T) {
	s := newTestStore(WithOrderNumbering("PX-", 500))
	s.AddToCart(2)

	order := s.PlaceOrder(ShippingInfo{})
	assert.Equal(t, "PX-503", order.ID)
}

func TestAddReview(t *testing.T) {
	s := newTestStore()

	first := s.AddReview(Review{ProductID: 2, Reviewer: "Alex", Rating: 5, Comment: "Great"})
	second := s.AddReview(Review{ProductID: 2, Reviewer: "Alex", Rating: 9, Comment: "Out of range"})
	third := s.AddReview(Review{ProductID: 77, Reviewer: "Alex", Rating: 0, Comment: "Unknown product", ID: 1})

	assert.Equal(t, 6, first.ID)
	assert.Equal(t, 7, second.ID)
	assert.Equal(t, 8, third.ID)
	assert.Equal(t, 9, second.Rating)
	assert.Len(t, s.Reviews(), 8)

	got := s.ProductReviews(2)
	require.Len(t, got, 3)
	assert.Equal(t, []int{4, 6, 7}, []int{got[0].ID, got[1].ID, got[2].ID})

	assert.Len(t, s.ProductReviews(77), 1)
	assert.Empty(t, s.ProductReviews(3000))
}

func TestSignInAndOut(t *testing.T) {
	s := newTestStore()

	_, ok := s.Identity()
	assert.False(t, ok)

	id := s.SignIn("Alex Rivera", "alex.rivera@example.com")
	assert.Equal(t, Identity{
		Name:              "Alex Rivera",
		Email:             "alex.rivera@example.com",
		Address:           "123 Market St, San Jose, CA 95112",
		PreferredMaterial: "PLA",
		Notifications:     "Email",
	}, id)

	replaced := s.SignIn("Sam", "sam@example.com")
	got, ok := s.Identity()
	require.True(t, ok)
	assert.Equal(t, replaced, got)

	s.AddToCart(1)
	s.AddReview(Review{ProductID: 1, Comment: "ok"})
	s.PlaceOrder(ShippingInfo{})
	s.AddToCart(2)

	s.SignOut()
	_, ok = s.Identity()
	assert.False(t, ok)
	assert.Empty(t, s.Cart())
	assert.Len(t, s.Reviews(), 6)
	assert.Len(t, s.Orders(), 4)
}

func TestUpdateProfile(t *testing.T) {
	s := newTestStore()
	material := "Resin"

	_, ok := s.UpdateProfile(ProfileUpdate{PreferredMaterial: &material})
	assert.False(t, ok)

	s.SignIn("Alex", "alex@example.com")
	id, ok := s.UpdateProfile(ProfileUpdate{PreferredMaterial: &material})
	require.True(t, ok)
	assert.Equal(t, "Resin", id.PreferredMaterial)
	assert.Equal(t, "Email", id.Notifications)
}

func TestSummary(t *testing.T) {
	s := newTestStore()
	s.AddToCart(1)
	s.AddToCart(1)
	s.AddToCart(3)

	summary, ok := s.Summary("")
	require.True(t, ok)
	assert.Equal(t, "48.00", summary.Subtotal.StringFixed(2))
	assert.Equal(t, "6.00", summary.Shipping.StringFixed(2))
	assert.Equal(t, "3.84", summary.Tax.StringFixed(2))
	assert.Equal(t, "57.84", summary.Total.StringFixed(2))

	summary, ok = s.Summary("pickup")
	require.True(t, ok)
	assert.Equal(t, "51.84", summary.Total.StringFixed(2))

	_, ok = s.Summary("drone")
	assert.False(t, ok)
}

func TestCheckout(t *testing.T) {
	s := newTestStore()
	s.AddToCart(1)
	s.AddToCart(1)
	s.AddToCart(3)

	order, summary, err := s.Checkout(ShippingInfo{FullName: "Alex Rivera", Method: "express"})
	require.NoError(t, err)

	assert.Equal(t, "PM-1046", order.ID)
	assert.Equal(t, "Modular Desk Organizer (2), Mechanical Keycap Set (3 pack) (1)", order.Items)
	assert.Equal(t, "48.00", summary.Subtotal.StringFixed(2))
	assert.Equal(t, "65.84", summary.Total.StringFixed(2))
	assert.Empty(t, s.Cart())
	assert.Equal(t, order, s.Orders()[0])
}

func TestCheckoutErrors(t *testing.T) {
	s := newTestStore()

	_, _, err := s.Checkout(ShippingInfo{})
	assert.ErrorIs(t, err, ErrEmptyCart)

	s.AddToCart(1)
	_, _, err = s.Checkout(ShippingInfo{Method: "drone"})
	assert.ErrorIs(t, err, ErrUnknownShipping)

	assert.Equal(t, []CartEntry{{ProductID: 1, Quantity: 1}}, s.Cart())
	assert.Len(t, s.Orders(), 3)
}

func TestCheckoutPricesTheItemsItOrders(t *testing.T) {
	for i := 0; i < 50; i++ {
		s := newTestStore()
		s.AddToCart(1)

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				s.AddToCart(1)
			}
		}()

		order, summary, err := s.Checkout(ShippingInfo{})
		wg.Wait()
		require.NoError(t, err)

		var qty int
		_, err = fmt.Sscanf(order.Items, "Modular Desk Organizer (%d)", &qty)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(int64(18*qty)).Equal(summary.Subtotal),
			"order %q priced at %s", order.Items, summary.Subtotal)
	}
}

func TestListenerSeesCommittedState(t *testing.T) {
	var events []Event
	var s *Store
	s = newTestStore(WithListener(func(e Event) {
		events = append(events, e)
		if e.Kind == EventCartChanged {
			_ = s.CartTotal()
		}
	}))

	s.AddToCart(1)
	s.UpdateQuantity(1, 0)
	s.RemoveFromCart(2)
	s.AddToCart(99)
	order := s.PlaceOrder(ShippingInfo{Method: "express"})

	require.Len(t, events, 2)
	assert.Equal(t, EventCartChanged, events[0].Kind)
	assert.Equal(t, 1, events[0].ProductID)
	assert.Equal(t, EventOrderPlaced, events[1].Kind)
	assert.Equal(t, order, *events[1].Order)
	assert.Equal(t, "express", events[1].Shipping.Method)
}
