package entities

import (
	"encoding/json"
	"errors"
	"fmt"
)

// DeliveryDetailsRaw is the loosely-typed delivery_details JSONB payload as
// written by the marketplace checkout. Historical rows carry either an object
// or a JSON-encoded string wrapping that object, so the column is modelled as
// an untyped blob until Normalize is called.
type DeliveryDetailsRaw []byte

// DeliveryDetails is the canonical shape the routing pipeline works with.
type DeliveryDetails struct {
	Address       string  `json:"address"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	PreferredTime *string `json:"preferred_time,omitempty"`
}

var ErrMalformedDeliveryDetails = errors.New("malformed delivery details")

// Normalize decodes the raw payload into its canonical shape. A string value
// is unwrapped and decoded a second time. Absent or null payloads return
// (nil, nil); anything undecodable returns ErrMalformedDeliveryDetails.
func (r DeliveryDetailsRaw) Normalize() (*DeliveryDetails, error) {
	if len(r) == 0 {
		return nil, nil
	}

	data := []byte(r)

	var encoded string
	if err := json.Unmarshal(data, &encoded); err == nil {
		data = []byte(encoded)
	}

	if string(data) == "null" || len(data) == 0 {
		return nil, nil
	}

	var details DeliveryDetails
	if err := json.Unmarshal(data, &details); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDeliveryDetails, err)
	}
	return &details, nil
}
