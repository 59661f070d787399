package models

import (
	"strings"
	"time"
)

// GalleryItem is a picture of finished work.
type GalleryItem struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text"`
	ImageURL    string `gorm:"size:1024;not null"`
	Category    string `gorm:"size:100;index"`
	Featured    bool   `gorm:"not null"`
	CreatedAt   time.Time
}

func (g *GalleryItem) TableName() string {
	return "gallery_items"
}

func (g *GalleryItem) ToMap() map[string]any {
	return map[string]any{
		"id":          g.ID,
		"title":       g.Title,
		"description": g.Description,
		"image_url":   g.ImageURL,
		"category":    g.Category,
		"featured":    g.Featured,
		"created_at":  formatTime(g.CreatedAt),
	}
}

type GalleryPatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	Category    *string
	Featured    *bool
}

func (p GalleryPatch) ValidateCreate() error {
	if blank(p.Title) {
		return Required("title")
	}
	if blank(p.ImageURL) {
		return Required("image_url")
	}
	return nil
}

func (p GalleryPatch) apply(dst *GalleryItem) {
	if p.Title != nil {
		dst.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		dst.Description = strings.TrimSpace(*p.Description)
	}
	if p.ImageURL != nil {
		dst.ImageURL = strings.TrimSpace(*p.ImageURL)
	}
	if p.Category != nil {
		dst.Category = strings.TrimSpace(*p.Category)
	}
	if p.Featured != nil {
		dst.Featured = *p.Featured
	}
}
