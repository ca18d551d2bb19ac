package model

import "vitrine-backend/internal/config"

// Profile is the company card shown on the dashboard
type Profile struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	LogoURL   string `json:"logoUrl"`
	Address   string `json:"address"`
	ZipCode   string `json:"zipCode"`
	City      string `json:"city"`
	Phone     string `json:"phone"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	Website   string `json:"website,omitempty"`
}

func ProfileFromConfig(cfg config.EnterpriseConfig) Profile {
	return Profile{
		ID:        cfg.ID,
		Email:     cfg.Email,
		Name:      cfg.Name,
		LogoURL:   cfg.LogoURL,
		Address:   cfg.Address,
		ZipCode:   cfg.ZipCode,
		City:      cfg.City,
		Phone:     cfg.Phone,
		Facebook:  cfg.Facebook,
		Twitter:   cfg.Twitter,
		Instagram: cfg.Instagram,
		TikTok:    cfg.TikTok,
		Website:   cfg.Website,
	}
}
