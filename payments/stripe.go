package payments

import (
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// StripeClient creates hosted checkout sessions through Stripe's REST API.
type StripeClient struct {
	client  *resty.Client
	apiURL  string
	apiKey  string
	siteURL string
}

func NewStripeClient(apiURL, apiKey, siteURL string) *StripeClient {
	return &StripeClient{
		client:  resty.New(),
		apiURL:  apiURL,
		apiKey:  apiKey,
		siteURL: siteURL,
	}
}

// CreateSession opens a one-off card payment session for the course. The
// success URL carries the session and course ids back to the storefront so
// the callback can reconcile the purchase.
func (s *StripeClient) CreateSession(item CheckoutItem) (*Session, error) {
	description := item.Description
	if description == "" {
		description = "Course enrollment"
	}

	resp, err := s.client.R().
		SetHeader("Authorization", "Bearer "+s.apiKey).
		SetFormData(map[string]string{
			"mode":                    "payment",
			"payment_method_types[0]": "card",
			"line_items[0][quantity]": "1",
			"line_items[0][price_data][currency]":                  "usd",
			"line_items[0][price_data][unit_amount]":               strconv.FormatInt(item.Price, 10),
			"line_items[0][price_data][product_data][name]":        item.Title,
			"line_items[0][price_data][product_data][description]": description,
			"success_url": fmt.Sprintf("%s/success?session_id={CHECKOUT_SESSION_ID}&course_id=%d", s.siteURL, item.CourseID),
			"cancel_url":  s.siteURL + "/courses",
			"metadata[courseId]": strconv.FormatUint(uint64(item.CourseID), 10),
		}).
		Post(s.apiURL + "/checkout/sessions")
	if err != nil {
		log.Printf("[PAYMENTS] Failed to reach payment provider: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("[PAYMENTS] Session creation failed: %s", resp.String())
		return nil, fmt.Errorf("payment provider returned status %d", resp.StatusCode())
	}

	var session Session
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		log.Printf("[PAYMENTS] Failed to parse session response: %v", err)
		return nil, err
	}
	if session.URL == "" {
		return nil, fmt.Errorf("payment provider returned no checkout URL")
	}

	return &session, nil
}
