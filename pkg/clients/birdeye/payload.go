package birdeye

// ContactUsPayload is the body of POST /resources/v1/contactUs/{businessId}.
type ContactUsPayload struct {
	CustomerComment  string           `json:"customerComment,omitempty"`
	Customer         Customer         `json:"customer"`
	AdditionalParams AdditionalParams `json:"additionalParams"`
}

// Customer identifies the person who filled in the form.
//
// Birdeye reads the phone number from different keys depending on the
// account setup, so the same value is sent as Phone, PhoneNumber and Mobile.
type Customer struct {
	Name        string `json:"name"`
	EmailID     string `json:"emailId"`
	Phone       string `json:"phone"`
	PhoneNumber string `json:"phoneNumber"`
	Mobile      string `json:"mobile"`
}

// AdditionalParams carries attribution data.
type AdditionalParams struct {
	Channel     string `json:"channel"`
	UTMCampaign string `json:"utmCampaign,omitempty"`
	Location    string `json:"location,omitempty"`
}
