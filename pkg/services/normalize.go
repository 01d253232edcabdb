package services

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"birdeye-relay/pkg/errs"
	"birdeye-relay/pkg/models"
)

var (
	e164Pattern  = regexp.MustCompile(`^\+\d{8,15}$`)
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// NormalizePhone rewrites a US-style phone number to E.164. It returns ""
// when the input cannot be normalized.
func NormalizePhone(raw string) string {
	phone := strings.TrimSpace(raw)
	if e164Pattern.MatchString(phone) {
		return phone
	}

	digits := nonDigits.ReplaceAllString(phone, "")
	switch {
	case len(digits) == 10:
		return "+1" + digits
	case len(digits) == 11 && digits[0] == '1':
		return "+" + digits
	default:
		return ""
	}
}

// ValidEmail checks the shape of an address only: something@domain.tld.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ParseContactForm reads the known fields out of a decoded request body.
func ParseContactForm(fields map[string]any) models.ContactFormData {
	return models.ContactFormData{
		Name:     stringField(fields, models.FieldName),
		Email:    stringField(fields, models.FieldEmail),
		Phone:    stringField(fields, models.FieldPhone),
		Comment:  stringField(fields, models.FieldComment),
		Location: stringField(fields, models.FieldLocation),
		Channel:  stringField(fields, models.FieldChannel),
		Campaign: stringField(fields, models.FieldCampaign),
	}
}

// NormalizeContact validates every required field and returns a single
// validation error naming all of them when any fail.
func NormalizeContact(form models.ContactFormData) (models.NormalizedContact, error) {
	var (
		invalid []string
		reasons []string
	)

	name := strings.TrimSpace(form.Name)
	if name == "" {
		invalid = append(invalid, models.FieldName)
		reasons = append(reasons, "missing name")
	}

	email := strings.TrimSpace(form.Email)
	switch {
	case email == "":
		invalid = append(invalid, models.FieldEmail)
		reasons = append(reasons, "missing email")
	case !ValidEmail(email):
		invalid = append(invalid, models.FieldEmail)
		reasons = append(reasons, "invalid email")
	}

	phone := NormalizePhone(form.Phone)
	if phone == "" {
		invalid = append(invalid, models.FieldPhone)
		if strings.TrimSpace(form.Phone) == "" {
			reasons = append(reasons, "missing phone")
		} else {
			reasons = append(reasons, "invalid phone")
		}
	}

	if len(invalid) > 0 {
		return models.NormalizedContact{}, errs.Validation(
			"Missing or invalid fields: "+strings.Join(invalid, ", "),
			reasons...,
		)
	}

	channel := form.Channel
	if channel == "" {
		channel = models.DefaultChannel
	}

	return models.NormalizedContact{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Comment:  form.Comment,
		Location: form.Location,
		Channel:  channel,
		Campaign: form.Campaign,
	}, nil
}

// stringField returns fields[key] as a string. Numbers are formatted so a
// phone sent as a JSON number still validates; other types read as absent.
func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
