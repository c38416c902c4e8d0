package session

import (
	"github.com/sirupsen/logrus"
)

// EventKind names a committed store mutation
type EventKind string

const (
	EventSignedIn       EventKind = "signed_in"
	EventSignedOut      EventKind = "signed_out"
	EventProfileUpdated EventKind = "profile_updated"
	EventCartChanged    EventKind = "cart_changed"
	EventOrderPlaced    EventKind = "order_placed"
	EventReviewAdded    EventKind = "review_added"
)

// Event describes a mutation after it has been applied
type Event struct {
	Kind      EventKind
	ProductID int
	Order     *Order
	Review    *Review
	Shipping  *ShippingInfo
}

// Listener observes committed mutations. It runs outside the store lock and
// may read from the store.
type Listener func(Event)

// LogListener logs every mutation at debug level, and orders at info
func LogListener(entry *logrus.Entry) Listener {
	return func(e Event) {
		fields := logrus.Fields{"event": e.Kind}
		if e.ProductID != 0 {
			fields["product_id"] = e.ProductID
		}

		switch {
		case e.Order != nil:
			fields["order_id"] = e.Order.ID
			fields["items"] = e.Order.Items
			if e.Shipping != nil {
				fields["shipping_method"] = e.Shipping.Method
				fields["city"] = e.Shipping.City
			}
			entry.WithFields(fields).Info("Order placed")
		case e.Review != nil:
			fields["review_id"] = e.Review.ID
			fields["rating"] = e.Review.Rating
			entry.WithFields(fields).Debug("Review added")
		default:
			entry.WithFields(fields).Debug("Session store updated")
		}
	}
}
