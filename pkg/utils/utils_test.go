package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	a := Fingerprint("+12055551234")
	assert.Len(t, a, fingerprintLen)
	assert.Equal(t, a, Fingerprint("+12055551234"))
	assert.NotEqual(t, a, Fingerprint("+12055551235"))
	assert.Empty(t, Fingerprint(""))
}

func TestMaskEmail(t *testing.T) {
	cases := map[string]string{
		"jane@example.com": "j**e@example.com",
		"ab@example.com":   "a*@example.com",
		"a@example.com":    "a@example.com",
		" weird ":          "w***d",
		"":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, MaskEmail(in), in)
	}
}
