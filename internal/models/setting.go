package models

type GeneralInformation struct {
	ProfilePictureURL string `json:"profile_picture_url"`
	FullName          string `json:"full_name"`
	RoleTitle         string `json:"role_title"`
	Location          string `json:"location"`
	BusinessName      string `json:"business_name"`
	EmailAddress      string `json:"email_address"`
	PhoneNumber       string `json:"phone_number"`
	Fax               string `json:"fax"`
	Country           string `json:"country"`
	City              string `json:"city"`
	State             string `json:"state"`
	Postcode          string `json:"postcode"`
}
