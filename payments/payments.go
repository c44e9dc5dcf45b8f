package payments

// CheckoutItem is the course line handed to the payment provider.
type CheckoutItem struct {
	CourseID    uint
	Title       string
	Description string
	Price       int64 // minor currency units
}

// Session is the hosted checkout session the provider hands back. The buyer
// completes payment on the provider's URL.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// SessionCreator creates hosted payment sessions. The production
// implementation talks to Stripe; tests use an in-memory fake.
type SessionCreator interface {
	CreateSession(item CheckoutItem) (*Session, error)
}
