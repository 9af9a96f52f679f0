package checkout

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hamza-kay/smashbros/internal/cart"
	"github.com/hamza-kay/smashbros/internal/payment"
)

var errUpstreamDown = errors.New("upstream down")

func setupTestRouter(t *testing.T, pay PaymentClient) (*gin.Engine, *cart.Ledger) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	carts := cart.NewService(cart.NewInMemoryStore())
	ledger := carts.Create()

	h := NewHandler(carts, NewService(pay, &mockOrderRepository{}))

	r := gin.New()
	r.POST("/carts/:cartId/checkout", func(c *gin.Context) {
		c.Set("appID", "app-1")
		h.Checkout(c)
	})
	r.POST("/carts/:cartId/complete", h.Complete)
	return r, ledger
}

func post(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutHandlerReturnsIntent(t *testing.T) {
	pay := &mockPaymentClient{intent: &payment.Intent{ClientSecret: "cs_123", Amount: 8.99, Currency: "gbp"}}
	r, ledger := setupTestRouter(t, pay)
	ledger.AddLine(cart.Line{ID: "101", Name: "Margherita", Price: 899, Quantity: 1})

	w := post(t, r, "/carts/"+ledger.CartID()+"/checkout", Customer{FulfillmentType: FulfillmentPickup})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var intent payment.Intent
	if err := json.Unmarshal(w.Body.Bytes(), &intent); err != nil {
		t.Fatalf("decode intent: %v", err)
	}
	if intent.ClientSecret != "cs_123" {
		t.Fatalf("client secret = %q", intent.ClientSecret)
	}
}

func TestCheckoutHandlerEmptyCart(t *testing.T) {
	r, ledger := setupTestRouter(t, &mockPaymentClient{})

	w := post(t, r, "/carts/"+ledger.CartID()+"/checkout", Customer{FulfillmentType: FulfillmentPickup})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestCheckoutHandlerValidationFailure(t *testing.T) {
	pay := &mockPaymentClient{}
	r, ledger := setupTestRouter(t, pay)
	ledger.AddLine(cart.Line{ID: "101", Name: "Margherita", Price: 899, Quantity: 1})

	w := post(t, r, "/carts/"+ledger.CartID()+"/checkout", Customer{FulfillmentType: FulfillmentDelivery})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	if pay.calls != 0 {
		t.Fatal("payment collaborator must not be called")
	}
}

func TestCheckoutHandlerUpstreamFailure(t *testing.T) {
	pay := &mockPaymentClient{err: errUpstreamDown}
	r, ledger := setupTestRouter(t, pay)
	ledger.AddLine(cart.Line{ID: "101", Name: "Margherita", Price: 899, Quantity: 1})

	w := post(t, r, "/carts/"+ledger.CartID()+"/checkout", Customer{FulfillmentType: FulfillmentPickup})
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}

func TestCompleteHandlerClearsCart(t *testing.T) {
	r, ledger := setupTestRouter(t, &mockPaymentClient{})
	ledger.AddLine(cart.Line{ID: "101", Name: "Margherita", Price: 899, Quantity: 1})

	w := post(t, r, "/carts/"+ledger.CartID()+"/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := len(ledger.Snapshot().Lines); got != 0 {
		t.Fatalf("cart lines = %d, want 0", got)
	}
}

func TestCheckoutHandlerUnknownCart(t *testing.T) {
	r, _ := setupTestRouter(t, &mockPaymentClient{})

	w := post(t, r, "/carts/no-such-cart/checkout", Customer{FulfillmentType: FulfillmentPickup})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
