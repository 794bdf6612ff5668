package request

import "encoding/json"

// PaymentCreateRequest is the payload for the "charge and confirm" route.
//
// `provider_payload` is forwarded and stored as raw JSON to support varying
// provider schemas.

type PaymentCreateRequest struct {
	ProviderPayload json.RawMessage `json:"provider_payload"`
}
