package models

// PaymentInitResult is the hosted-payment initialization response. The
// redirect target is mandatory: its absence is a hard failure, not a silent
// fallback.
type PaymentInitResult struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code,omitempty"`
	Reference        string `json:"reference"`
}

// BankDetails are the account details shown before a bank-transfer booking
// is committed.
type BankDetails struct {
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
	BankName      string `json:"bankName"`
	Reference     string `json:"reference,omitempty"`
}

// PaymentOutcome is the terminal result of a reservation attempt, telling the
// UI where to go next.
type PaymentOutcome struct {
	Method    PaymentMethod `json:"method"`
	BookingID string        `json:"bookingId"`

	// OnlineGateway: same-tab redirect target, navigated to after a short
	// deliberate delay so in-flight UI updates settle first. The delay is
	// plain milliseconds on the wire.
	RedirectURL     string `json:"redirectUrl,omitempty"`
	RedirectDelayMs int64  `json:"redirectDelayMs,omitempty"`

	// BankTransfer / PayOnsite: in-app route to navigate to.
	Route string `json:"route,omitempty"`

	// BankTransfer: transfer amount and account to pay into.
	Amount      float64      `json:"amount,omitempty"`
	Currency    string       `json:"currency,omitempty"`
	BankDetails *BankDetails `json:"bankDetails,omitempty"`
	Reference   string       `json:"reference,omitempty"`
}
