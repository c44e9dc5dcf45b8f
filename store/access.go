package store

import "log"

// AccessPolicy derives the "may watch" decision from ledger presence. There
// are no time-limited licenses, seat limits, or revocation: purchased means
// accessible, forever. The decision is evaluated on every content-page load
// and never cached across requests.
type AccessPolicy struct {
	ledger   *PurchaseLedger
	failOpen bool
}

// NewAccessPolicy builds the policy. failOpen selects the ledger read-error
// behavior: false denies access during a store outage (strict, but can lock
// out paying customers), true allows it.
func NewAccessPolicy(ledger *PurchaseLedger, failOpen bool) *AccessPolicy {
	return &AccessPolicy{ledger: ledger, failOpen: failOpen}
}

// CanAccess reports whether the user may watch the course.
func (a *AccessPolicy) CanAccess(userID, courseID uint) bool {
	purchased, err := a.ledger.HasPurchased(userID, courseID)
	if err != nil {
		log.Printf("[ACCESS] ledger read failed for user %d course %d (fail_open=%v): %v", userID, courseID, a.failOpen, err)
		return a.failOpen
	}
	return purchased
}
