package services

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birdeye-relay/pkg/errs"
	"birdeye-relay/pkg/models"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"2055551234":        "+12055551234",
		"(205) 555-1234":    "+12055551234",
		"205.555.1234":      "+12055551234",
		"  205 555 1234  ":  "+12055551234",
		"12055551234":       "+12055551234",
		"1 (205) 555-1234":  "+12055551234",
		"+12055551234":      "+12055551234",
		"+447911123456":     "+447911123456",
		"+12345678":         "+12345678",
		"+123456789012345":  "+123456789012345",
		" +12055551234 ":    "+12055551234",
		"+44 7911 123456":   "",
		"555-1234":          "",
		"22055551234":       "",
		"205555123456":      "",
		"":                  "",
		"not a phone":       "",
		"+1234567":          "",
		"+1234567890123456": "",
	}

	for in, want := range cases {
		t.Run(fmt.Sprintf("%q", in), func(t *testing.T) {
			assert.Equal(t, want, NormalizePhone(in))
		})
	}
}

func TestNormalizePhoneProperties(t *testing.T) {
	for i := 0; i < 200; i++ {
		ten := fmt.Sprintf("%010d", 2000000000+i*7919)
		assert.Equal(t, "+1"+ten, NormalizePhone(ten))
		assert.Equal(t, "+1"+ten, NormalizePhone("1"+ten))
		assert.Equal(t, "+"+ten, NormalizePhone("+"+ten))
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"jane@example.com", "a.b+c@sub.example.co", "x@y.z"}
	invalid := []string{"", "jane", "jane@example", "@example.com", "jane@.", "jane doe@example.com", "jane@exa mple.com"}

	for _, e := range valid {
		assert.True(t, ValidEmail(e), e)
	}
	for _, e := range invalid {
		assert.False(t, ValidEmail(e), e)
	}
}

func TestParseContactForm(t *testing.T) {
	form := ParseContactForm(map[string]any{
		"name":            "Jane Doe",
		"Emailid":         "jane@example.com",
		"phone":           float64(2055551234),
		"customerComment": "hello",
		"location":        "Birmingham",
		"utmCampaign":     json.Number("7"),
		"channel":         true,
	})

	assert.Equal(t, models.ContactFormData{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "2055551234",
		Comment:  "hello",
		Location: "Birmingham",
		Campaign: "7",
	}, form)
}

func TestNormalizeContact(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		got, err := NormalizeContact(models.ContactFormData{
			Name:     " Jane Doe ",
			Email:    " jane@example.com",
			Phone:    "2055551234",
			Comment:  "hi",
			Location: "Birmingham",
			Campaign: "spring",
		})
		require.NoError(t, err)

		assert.Equal(t, models.NormalizedContact{
			Name:     "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+12055551234",
			Comment:  "hi",
			Location: "Birmingham",
			Channel:  models.DefaultChannel,
			Campaign: "spring",
		}, got)
	})

	t.Run("explicit channel passes through", func(t *testing.T) {
		got, err := NormalizeContact(models.ContactFormData{
			Name: "Jane", Email: "jane@example.com", Phone: "2055551234", Channel: "Facebook",
		})
		require.NoError(t, err)
		assert.Equal(t, "Facebook", got.Channel)
	})

	t.Run("all failures reported together", func(t *testing.T) {
		_, err := NormalizeContact(models.ContactFormData{
			Name:  "   ",
			Email: "not-an-email",
			Phone: "12345",
		})
		require.Error(t, err)
		require.True(t, errs.Is(err, errs.KindValidation))

		e := errs.From(err)
		assert.Contains(t, e.Message, "name")
		assert.Contains(t, e.Message, "Emailid")
		assert.Contains(t, e.Message, "phone")
		assert.Equal(t, []string{"missing name", "invalid email", "invalid phone"}, e.Fields)
	})

	t.Run("empty submission", func(t *testing.T) {
		_, err := NormalizeContact(models.ContactFormData{})
		e := errs.From(err)
		require.NotNil(t, e)
		assert.Equal(t, []string{"missing name", "missing email", "missing phone"}, e.Fields)
	})

	t.Run("single failure", func(t *testing.T) {
		_, err := NormalizeContact(models.ContactFormData{
			Name: "Jane", Email: "jane@example.com", Phone: "555",
		})
		e := errs.From(err)
		require.NotNil(t, e)
		assert.Equal(t, "Missing or invalid fields: phone", e.Message)
	})
}
