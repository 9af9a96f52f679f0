package checkout

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hamza-kay/smashbros/internal/cart"
)

// BuildRequest assembles the checkout payload from a ledger snapshot and
// the customer's fulfillment details. It performs no network calls; a
// validation failure here means nothing is ever sent to the payment
// collaborator.
func BuildRequest(snap cart.Snapshot, customer Customer, appID string, now time.Time) (*Request, error) {
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	fulfillment := Fulfillment{
		UID:      uuid.New().String(),
		Type:     strings.ToUpper(customer.FulfillmentType),
		State:    "PROPOSED",
		Location: "UK",
	}

	displayName := strings.TrimSpace(customer.FirstName + " " + customer.LastName)
	pickupAt := now.UTC().Format(time.RFC3339)

	if customer.FulfillmentType == FulfillmentDelivery {
		locality := customer.City
		if locality == "" {
			locality = "London"
		}
		fulfillment.DeliveryDetails = &DeliveryDetails{
			AppID: appID,
			Recipient: Recipient{
				DisplayName:  displayName,
				EmailAddress: customer.Email,
				PhoneNumber:  customer.PhoneNumber,
				AddressLine1: customer.DeliveryAddress,
				PostalCode:   customer.Postcode,
				Country:      "GB",
				Locality:     locality,
			},
			ScheduleType: "ASAP",
			PickupAt:     pickupAt,
			Note:         customer.Notes,
			POS:          "other",
		}
	} else {
		fulfillment.PickupDetails = &PickupDetails{
			AppID: appID,
			Recipient: Recipient{
				DisplayName: displayName,
			},
			ScheduleType: "ASAP",
			PickupAt:     pickupAt,
			Note:         customer.Notes,
			Address:      customer.DeliveryAddress,
			Email:        customer.Email,
			Number:       customer.PhoneNumber,
			POS:          "other",
		}
	}

	return &Request{
		CartItems:    snap.Lines,
		Fulfillments: []Fulfillment{fulfillment},
	}, nil
}
