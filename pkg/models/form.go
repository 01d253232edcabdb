package models

// Form field names posted by the website's contact form.
const (
	FieldName     = "name"
	FieldEmail    = "Emailid"
	FieldPhone    = "phone"
	FieldComment  = "customerComment"
	FieldLocation = "location"
	FieldChannel  = "channel"
	FieldCampaign = "utmCampaign"
)

// DefaultChannel is used when the form does not say where it came from.
const DefaultChannel = "Web"

// ContactFormData represents the data structure coming from the contact form
type ContactFormData struct {
	Name     string `json:"name"`
	Email    string `json:"Emailid"`
	Phone    string `json:"phone"`
	Comment  string `json:"customerComment,omitempty"`
	Location string `json:"location,omitempty"`
	Channel  string `json:"channel,omitempty"`
	Campaign string `json:"utmCampaign,omitempty"`
}

// NormalizedContact is a submission that passed validation. Phone is E.164.
type NormalizedContact struct {
	Name     string
	Email    string
	Phone    string
	Comment  string
	Location string
	Channel  string
	Campaign string
}
