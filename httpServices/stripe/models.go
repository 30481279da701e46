package httpServices

// paymentIntentResponse is the subset of the gateway's payment-intent object
// the server cares about.
type paymentIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// errorResponse is the gateway's error envelope.
type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// GatewayError carries the upstream error message verbatim. No retry is
// attempted; the failure surfaces as-is to the caller.
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return e.Message
}
