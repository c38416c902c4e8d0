package session

const (
	defaultAddress           = "123 Market St, San Jose, CA 95112"
	defaultPreferredMaterial = "PLA"
	defaultNotifications     = "Email"
)

// SeedReviews returns the reviews every new session starts with
func SeedReviews() []Review {
	return []Review{
		{ID: 1, ProductID: 1, Reviewer: "Jamie P.", Rating: 5, Comment: "Perfect fit for my desk drawer. The stackable feature is super useful."},
		{ID: 2, ProductID: 1, Reviewer: "Sam K.", Rating: 4, Comment: "Good quality print. I'd love one more divider option, but overall great."},
		{ID: 3, ProductID: 1, Reviewer: "Taylor W.", Rating: 5, Comment: "Arrived fast and looks clean. Holds my cables + USB drives nicely."},
		{ID: 4, ProductID: 2, Reviewer: "Morgan L.", Rating: 5, Comment: "Stunning detail. The joints move smoothly and it looks amazing on my shelf."},
		{ID: 5, ProductID: 3, Reviewer: "Casey R.", Rating: 4, Comment: "Love the translucent look. Fits my keyboard perfectly."},
	}
}

// SeedOrders returns the order history every new session starts with,
// most recent first
func SeedOrders() []Order {
	return []Order{
		{ID: "PM-1042", Date: "Feb 2, 2026", Status: OrderStatusShipped, Items: "Desk Organizer (2), Keycaps (1)"},
		{ID: "PM-1031", Date: "Jan 21, 2026", Status: OrderStatusProcessing, Items: "Crystal Dragon (1)"},
		{ID: "PM-1019", Date: "Jan 3, 2026", Status: OrderStatusCompleted, Items: "Cable clips (6), Phone stand (1)"},
	}
}
