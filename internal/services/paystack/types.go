package paystack

// InitializeRequest is the payload for POST /transaction/initialize.
// Amount is in kobo, the gateway's minor currency unit.
type InitializeRequest struct {
	Email       string   `json:"email"`
	Amount      int64    `json:"amount"`
	Reference   string   `json:"reference"`
	CallbackURL string   `json:"callback_url,omitempty"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

// Metadata carries linkage fields plus the human-readable custom fields
// Paystack renders on its dashboard.
type Metadata struct {
	PaymentID    string        `json:"paymentId,omitempty"`
	ApartmentID  string        `json:"apartmentId,omitempty"`
	UserID       string        `json:"userId,omitempty"`
	CustomFields []CustomField `json:"custom_fields,omitempty"`
}

type CustomField struct {
	DisplayName  string `json:"display_name"`
	VariableName string `json:"variable_name"`
	Value        string `json:"value"`
}

// InitializeData is the gateway's answer to a successful initialize.
type InitializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// Authorization describes the instrument used for a charge.
type Authorization struct {
	Channel  string `json:"channel,omitempty"`
	CardType string `json:"card_type,omitempty"`
	Last4    string `json:"last4,omitempty"`
	Bank     string `json:"bank,omitempty"`
}

// VerifyData is the transaction state reported by GET /transaction/verify.
type VerifyData struct {
	Status        string        `json:"status"`
	Reference     string        `json:"reference"`
	Amount        int64         `json:"amount"`
	Currency      string        `json:"currency"`
	Channel       string        `json:"channel"`
	Authorization Authorization `json:"authorization"`
}

// Success reports whether the gateway considers the charge paid.
func (d *VerifyData) Success() bool { return d.Status == "success" }

// WebhookEvent is the payload Paystack posts to the webhook endpoint.
type WebhookEvent struct {
	Event string     `json:"event"`
	Data  VerifyData `json:"data"`
}

// EventChargeSuccess is the only webhook event the settlement flow acts on.
const EventChargeSuccess = "charge.success"

// SignatureHeader is the request header carrying the HMAC of the body.
const SignatureHeader = "x-paystack-signature"
