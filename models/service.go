package models

import (
	"strings"
	"time"
)

// Service is an offering shown on the services page.
type Service struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	ImageURL    string `gorm:"size:1024"`
	Featured    bool   `gorm:"not null"`
	CreatedAt   time.Time
}

func (s *Service) TableName() string {
	return "services"
}

func (s *Service) ToMap() map[string]any {
	return map[string]any{
		"id":          s.ID,
		"title":       s.Title,
		"description": s.Description,
		"image_url":   s.ImageURL,
		"featured":    s.Featured,
		"created_at":  formatTime(s.CreatedAt),
	}
}

type ServicePatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	Featured    *bool
}

func (p ServicePatch) ValidateCreate() error {
	if blank(p.Title) {
		return Required("title")
	}
	if blank(p.Description) {
		return Required("description")
	}
	return nil
}

func (p ServicePatch) apply(dst *Service) {
	if p.Title != nil {
		dst.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		dst.Description = strings.TrimSpace(*p.Description)
	}
	if p.ImageURL != nil {
		dst.ImageURL = strings.TrimSpace(*p.ImageURL)
	}
	if p.Featured != nil {
		dst.Featured = *p.Featured
	}
}
