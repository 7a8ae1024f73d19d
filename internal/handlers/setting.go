package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/dashboard-demo-api/internal/dto"
	apierrors "github.com/yukikurage/dashboard-demo-api/internal/errors"
	"github.com/yukikurage/dashboard-demo-api/internal/models"
	"github.com/yukikurage/dashboard-demo-api/internal/services"
)

// SettingHandler serves the settings profile.
type SettingHandler struct {
	settingService *services.SettingService
}

// NewSettingHandler creates a new SettingHandler.
func NewSettingHandler(settingService *services.SettingService) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
	}
}

// GetSettings returns the profile being edited.
func (h *SettingHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSettingsDTO(h.settingService.Info()))
}

// PatchSettings sanitizes and merges the provided fields.
func (h *SettingHandler) PatchSettings(c *gin.Context) {
	type PatchSettingsRequest struct {
		ProfilePictureURL *string `json:"profile_picture_url"`
		FullName          *string `json:"full_name"`
		RoleTitle         *string `json:"role_title"`
		Location          *string `json:"location"`
		BusinessName      *string `json:"business_name"`
		EmailAddress      *string `json:"email_address"`
		PhoneNumber       *string `json:"phone_number"`
		Fax               *string `json:"fax"`
		Country           *string `json:"country"`
		City              *string `json:"city"`
		State             *string `json:"state"`
		Postcode          *string `json:"postcode"`
	}

	var req PatchSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	info := h.settingService.Patch(services.SettingsPatch{
		ProfilePictureURL: req.ProfilePictureURL,
		FullName:          req.FullName,
		RoleTitle:         req.RoleTitle,
		Location:          req.Location,
		BusinessName:      req.BusinessName,
		EmailAddress:      req.EmailAddress,
		PhoneNumber:       req.PhoneNumber,
		Fax:               req.Fax,
		Country:           req.Country,
		City:              req.City,
		State:             req.State,
		Postcode:          req.Postcode,
	})
	c.JSON(http.StatusOK, dto.ToSettingsDTO(info))
}

// ReplaceSettings replaces the whole profile.
func (h *SettingHandler) ReplaceSettings(c *gin.Context) {
	var req models.GeneralInformation
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsDTO(h.settingService.SetAll(req)))
}

// SaveSettings persists the profile.
func (h *SettingHandler) SaveSettings(c *gin.Context) {
	if err := h.settingService.Save(c.Request.Context()); err != nil {
		apierrors.OperationFailed(c, "Save failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Saved successfully",
		"settings": dto.ToSettingsDTO(h.settingService.Info()),
	})
}

// LoadSettings discards unsaved edits by restoring the stored profile.
func (h *SettingHandler) LoadSettings(c *gin.Context) {
	loaded, err := h.settingService.Load(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"loaded":   loaded,
		"settings": dto.ToSettingsDTO(h.settingService.Info()),
	})
}

// ResetSettings deletes the stored profile and starts over empty.
func (h *SettingHandler) ResetSettings(c *gin.Context) {
	if err := h.settingService.Reset(c.Request.Context()); err != nil {
		apierrors.OperationFailed(c, "Reset failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsDTO(h.settingService.Info()))
}

// UploadPhoto sets the profile picture URL.
func (h *SettingHandler) UploadPhoto(c *gin.Context) {
	type UploadPhotoRequest struct {
		URL string `json:"url" binding:"required"`
	}

	var req UploadPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	info, err := h.settingService.SetPhoto(req.URL)
	if err != nil {
		if errors.Is(err, services.ErrPhotoURLRequired) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsDTO(info))
}

// DeletePhoto clears the profile picture.
func (h *SettingHandler) DeletePhoto(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToSettingsDTO(h.settingService.DeletePhoto()))
}
