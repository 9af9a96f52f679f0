package checkout

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/hamza-kay/smashbros/internal/cart"
	"github.com/hamza-kay/smashbros/internal/payment"
)

var ErrEmptyCart = errors.New("cart is empty")

// PaymentClient is the external payment-intent collaborator.
type PaymentClient interface {
	CreateIntent(ctx context.Context, payload any) (*payment.Intent, error)
}

// OrderRepository records checkout attempts and completions.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	MarkCompleted(ctx context.Context, cartID string) error
}

// Order is the durable record of one checkout.
type Order struct {
	ID           string
	CartID       string
	Request      *Request
	ClientSecret string
	Amount       float64
	Currency     string
	Status       string
	CreatedAt    time.Time
}

type Service struct {
	pay    PaymentClient
	orders OrderRepository
}

func NewService(pay PaymentClient, orders OrderRepository) *Service {
	return &Service{pay: pay, orders: orders}
}

// Checkout assembles the request and creates a payment intent upstream.
// The ledger is left untouched: it is cleared only when Complete signals
// that the payment collaborator confirmed the order.
func (s *Service) Checkout(ctx context.Context, ledger *cart.Ledger, customer Customer, appID string) (*payment.Intent, error) {
	snap := ledger.Snapshot()
	if len(snap.Lines) == 0 {
		return nil, ErrEmptyCart
	}

	req, err := BuildRequest(snap, customer, appID, time.Now())
	if err != nil {
		return nil, err
	}

	intent, err := s.pay.CreateIntent(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.orders != nil {
		order := &Order{
			CartID:       snap.CartID,
			Request:      req,
			ClientSecret: intent.ClientSecret,
			Amount:       intent.Amount,
			Currency:     intent.Currency,
			Status:       "PENDING",
		}
		if err := s.orders.Create(ctx, order); err != nil {
			// The intent already exists upstream; an order-record failure
			// must not block the shopper from paying.
			log.Printf("cart %s: record order failed: %v", snap.CartID, err)
		}
	}

	return intent, nil
}

// Complete handles the payment collaborator's success signal: the order is
// marked completed and the ledger is cleared exactly once.
func (s *Service) Complete(ctx context.Context, ledger *cart.Ledger) error {
	if s.orders != nil {
		if err := s.orders.MarkCompleted(ctx, ledger.CartID()); err != nil {
			log.Printf("cart %s: mark order completed failed: %v", ledger.CartID(), err)
		}
	}

	ledger.Clear()
	return nil
}
