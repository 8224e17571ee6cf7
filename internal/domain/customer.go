package domain

type Customer struct {
	ID        int32  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
}

// CustomerDetails extends a customer 1:1 with address and contact data.
// Written through an upsert so the row may appear after the customer does.
type CustomerDetails struct {
	CustomerID       int32  `json:"customer_id"`
	Street           string `json:"street"`
	PostalCode       string `json:"postal_code"`
	City             string `json:"city"`
	Email            string `json:"email"`
	MarketingConsent bool   `json:"marketing_consent"`
}
