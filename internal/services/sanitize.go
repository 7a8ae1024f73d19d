package services

import (
	"regexp"
	"strings"

	"github.com/yukikurage/dashboard-demo-api/internal/constants"
)

// Settings field names as they appear in the JSON payload
const (
	FieldProfilePictureURL = "profile_picture_url"
	FieldFullName          = "full_name"
	FieldRoleTitle         = "role_title"
	FieldLocation          = "location"
	FieldBusinessName      = "business_name"
	FieldEmailAddress      = "email_address"
	FieldPhoneNumber       = "phone_number"
	FieldFax               = "fax"
	FieldCountry           = "country"
	FieldCity              = "city"
	FieldState             = "state"
	FieldPostcode          = "postcode"
)

var (
	repeatedSpace = regexp.MustCompile(`\s{2,}`)
	controlChars  = regexp.MustCompile(`[\x00-\x1F\x7F]+`)
	emojiRange    = regexp.MustCompile(`[\x{1F000}-\x{1FFFF}]`)
	phoneReject   = regexp.MustCompile(`[^0-9+\-() ]+`)
	nonDigits     = regexp.MustCompile(`\D+`)
)

// SanitizeField cleans a single settings value. country decides the
// postcode length.
func SanitizeField(field, value, country string) string {
	value = strings.TrimSpace(value)
	value = repeatedSpace.ReplaceAllString(value, " ")
	value = controlChars.ReplaceAllString(value, "")
	value = emojiRange.ReplaceAllString(value, "")

	switch field {
	case FieldEmailAddress:
		value = strings.ToLower(value)
	case FieldPhoneNumber, FieldFax:
		value = phoneReject.ReplaceAllString(value, "")
		value = truncate(value, constants.MaxPhoneLength)
	case FieldPostcode:
		value = nonDigits.ReplaceAllString(value, "")
		if country == constants.CountryCodeThailand {
			value = truncate(value, constants.PostcodeLengthTH)
		} else {
			value = truncate(value, constants.PostcodeLengthOther)
		}
	}

	return value
}

// PostcodePattern returns the postcode format expected for country
func PostcodePattern(country string) string {
	if country == constants.CountryCodeThailand {
		return `^\d{5}$`
	}
	return `^\d{3,10}$`
}

// truncate cuts s to n bytes. Callers only pass ASCII.
func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
