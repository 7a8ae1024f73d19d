package dto

import (
	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/services"
)

// SettingsDTO represents the profile with the postcode format for its country
type SettingsDTO struct {
	models.GeneralInformation
	PostcodePattern string `json:"postcode_pattern"`
}

// ToSettingsDTO converts GeneralInformation to SettingsDTO
func ToSettingsDTO(info models.GeneralInformation) SettingsDTO {
	return SettingsDTO{
		GeneralInformation: info,
		PostcodePattern:    services.PostcodePattern(info.Country),
	}
}
