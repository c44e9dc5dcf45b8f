package payments

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateSessionParsesProviderResponse(t *testing.T) {
	var gotAuth string
	var gotForm map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, r.ParseForm())
		gotForm = map[string]string{}
		for key := range r.PostForm {
			gotForm[key] = r.PostForm.Get(key)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"id":  "cs_test_123",
			"url": "https://checkout.stripe.com/pay/cs_test_123",
		})
	}))
	defer server.Close()

	client := NewStripeClient(server.URL, "sk_test_key", "https://learnhub.example")

	session, err := client.CreateSession(CheckoutItem{CourseID: 7, Title: "Intro", Price: 1999})
	assert.NoError(t, err)
	assert.Equal(t, "cs_test_123", session.ID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", session.URL)

	assert.Equal(t, "Bearer sk_test_key", gotAuth)
	assert.Equal(t, "payment", gotForm["mode"])
	assert.Equal(t, "1999", gotForm["line_items[0][price_data][unit_amount]"])
	assert.Equal(t, "Intro", gotForm["line_items[0][price_data][product_data][name]"])
	// Empty description falls back to a generic product line
	assert.Equal(t, "Course enrollment", gotForm["line_items[0][price_data][product_data][description]"])
	assert.Equal(t, "https://learnhub.example/success?session_id={CHECKOUT_SESSION_ID}&course_id=7", gotForm["success_url"])
}

func TestCreateSessionProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"error": {"message": "card declined"}}`))
	}))
	defer server.Close()

	client := NewStripeClient(server.URL, "sk_test_key", "https://learnhub.example")

	session, err := client.CreateSession(CheckoutItem{CourseID: 7, Title: "Intro", Price: 1999})
	assert.Error(t, err)
	assert.Nil(t, session)
}

func TestCreateSessionMissingURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "cs_test_456"})
	}))
	defer server.Close()

	client := NewStripeClient(server.URL, "sk_test_key", "https://learnhub.example")

	session, err := client.CreateSession(CheckoutItem{CourseID: 7, Title: "Intro", Price: 1999})
	assert.Error(t, err)
	assert.Nil(t, session)
}
