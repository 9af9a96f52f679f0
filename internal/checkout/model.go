package checkout

import (
	"errors"
	"strings"

	"github.com/hamza-kay/smashbros/internal/cart"
)

const (
	FulfillmentPickup   = "PICKUP"
	FulfillmentDelivery = "DELIVERY"
)

// Customer is the checkout form data. Field-level shape checks (email
// format, phone length) belong to the form layer; this validation is the
// hard precondition gate before anything is sent to the payment
// collaborator.
type Customer struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phoneNumber"`
	FulfillmentType string `json:"fulfillmentType"`
	DeliveryAddress string `json:"deliveryAddress"`
	Apartment       string `json:"apartment"`
	Postcode        string `json:"postcode"`
	City            string `json:"city"`
	Notes           string `json:"notes"`
}

func (c Customer) Validate() error {
	switch c.FulfillmentType {
	case FulfillmentPickup:
		return nil
	case FulfillmentDelivery:
		if strings.TrimSpace(c.DeliveryAddress) == "" {
			return errors.New("street address is required for delivery")
		}
		if strings.TrimSpace(c.Postcode) == "" {
			return errors.New("postcode is required for delivery")
		}
		if strings.TrimSpace(c.City) == "" {
			return errors.New("city is required for delivery")
		}
		return nil
	case "":
		return errors.New("fulfillment type is required")
	default:
		return errors.New("fulfillment type must be PICKUP or DELIVERY")
	}
}

// Wire shapes for the upstream checkout endpoint.

type Recipient struct {
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"email_address,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	AddressLine1 string `json:"address_line_1,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`
	Locality     string `json:"locality,omitempty"`
}

type DeliveryDetails struct {
	AppID        string    `json:"appId"`
	Recipient    Recipient `json:"recipient"`
	ScheduleType string    `json:"scheduleType"`
	PickupAt     string    `json:"pickupAt"`
	Note         string    `json:"note"`
	POS          string    `json:"pos"`
}

type PickupDetails struct {
	AppID        string    `json:"appId"`
	Recipient    Recipient `json:"recipient"`
	ScheduleType string    `json:"scheduleType"`
	PickupAt     string    `json:"pickupAt"`
	Note         string    `json:"note"`
	Address      string    `json:"address"`
	Email        string    `json:"email"`
	Number       string    `json:"number"`
	POS          string    `json:"pos"`
}

type Fulfillment struct {
	UID             string           `json:"uid"`
	Type            string           `json:"type"`
	State           string           `json:"state"`
	Location        string           `json:"location"`
	DeliveryDetails *DeliveryDetails `json:"deliveryDetails,omitempty"`
	PickupDetails   *PickupDetails   `json:"pickupDetails,omitempty"`
}

// Request is the checkout payload handed to the payment collaborator.
type Request struct {
	CartItems    []cart.Line   `json:"cartItems"`
	Fulfillments []Fulfillment `json:"fulfillments"`
}
