package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/yukikurage/dashboard-demo-api/internal/constants"
	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/repository"
)

var ErrPhotoURLRequired = errors.New("photo url is required")

// SettingsPatch carries the fields to change. Nil fields are kept.
type SettingsPatch struct {
	ProfilePictureURL *string
	FullName          *string
	RoleTitle         *string
	Location          *string
	BusinessName      *string
	EmailAddress      *string
	PhoneNumber       *string
	Fax               *string
	Country           *string
	City              *string
	State             *string
	Postcode          *string
}

// SettingService holds the profile being edited. Edits stay in memory
// until Save writes them to the settings slot.
type SettingService struct {
	mu    sync.Mutex
	slots repository.SlotRepository
	info  models.GeneralInformation
}

func NewSettingService(slots repository.SlotRepository) *SettingService {
	return &SettingService{slots: slots}
}

// Info returns the current profile
func (s *SettingService) Info() models.GeneralInformation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info
}

// Patch sanitizes and merges the given fields. A country in the same patch
// applies to the postcode.
func (s *SettingService) Patch(p SettingsPatch) models.GeneralInformation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Country != nil {
		s.info.Country = SanitizeField(FieldCountry, *p.Country, s.info.Country)
	}
	country := s.info.Country

	fields := []struct {
		name string
		src  *string
		dst  *string
	}{
		{FieldProfilePictureURL, p.ProfilePictureURL, &s.info.ProfilePictureURL},
		{FieldFullName, p.FullName, &s.info.FullName},
		{FieldRoleTitle, p.RoleTitle, &s.info.RoleTitle},
		{FieldLocation, p.Location, &s.info.Location},
		{FieldBusinessName, p.BusinessName, &s.info.BusinessName},
		{FieldEmailAddress, p.EmailAddress, &s.info.EmailAddress},
		{FieldPhoneNumber, p.PhoneNumber, &s.info.PhoneNumber},
		{FieldFax, p.Fax, &s.info.Fax},
		{FieldCity, p.City, &s.info.City},
		{FieldState, p.State, &s.info.State},
		{FieldPostcode, p.Postcode, &s.info.Postcode},
	}
	for _, f := range fields {
		if f.src != nil {
			*f.dst = SanitizeField(f.name, *f.src, country)
		}
	}

	return s.info
}

// SetAll replaces the whole profile, sanitizing every field
func (s *SettingService) SetAll(info models.GeneralInformation) models.GeneralInformation {
	s.mu.Lock()
	s.info = models.GeneralInformation{}
	s.mu.Unlock()

	return s.Patch(SettingsPatch{
		ProfilePictureURL: &info.ProfilePictureURL,
		FullName:          &info.FullName,
		RoleTitle:         &info.RoleTitle,
		Location:          &info.Location,
		BusinessName:      &info.BusinessName,
		EmailAddress:      &info.EmailAddress,
		PhoneNumber:       &info.PhoneNumber,
		Fax:               &info.Fax,
		Country:           &info.Country,
		City:              &info.City,
		State:             &info.State,
		Postcode:          &info.Postcode,
	})
}

// SetPhoto sets the profile picture URL
func (s *SettingService) SetPhoto(url string) (models.GeneralInformation, error) {
	clean := SanitizeField(FieldProfilePictureURL, url, "")
	if clean == "" {
		return models.GeneralInformation{}, ErrPhotoURLRequired
	}
	return s.Patch(SettingsPatch{ProfilePictureURL: &clean}), nil
}

// DeletePhoto clears the profile picture URL
func (s *SettingService) DeletePhoto() models.GeneralInformation {
	empty := ""
	return s.Patch(SettingsPatch{ProfilePictureURL: &empty})
}

// Save writes the current profile to storage. The profile is unchanged on failure.
func (s *SettingService) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := repository.SaveSnapshot(ctx, s.slots, constants.SlotSettings, s.info); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// Load replaces the profile with the stored one. It reports false and keeps
// the current profile when nothing usable is stored.
func (s *SettingService) Load(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored models.GeneralInformation
	found, err := repository.LoadSnapshot(ctx, s.slots, constants.SlotSettings, &stored)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotCorrupt) {
			log.Printf("[settings] keeping current profile: %v", err)
			return false, nil
		}
		return false, fmt.Errorf("failed to load settings: %w", err)
	}
	if !found {
		return false, nil
	}

	s.info = stored
	return true, nil
}

// Reset removes the stored profile and clears the one being edited. The
// profile is unchanged when the stored copy cannot be removed.
func (s *SettingService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.slots.Delete(ctx, constants.SlotSettings); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	s.info = models.GeneralInformation{}
	return nil
}
