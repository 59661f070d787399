package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// StatusNew is the status every contact message starts with.
const StatusNew = "new"

// ContactMessage is a contact form submission.
// Status is free text; the admin UI uses new, read and resolved.
type ContactMessage struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:200;not null;index"`
	Phone     string `gorm:"size:50"`
	Subject   string `gorm:"size:300;not null"`
	Message   string `gorm:"type:text;not null"`
	Status    string `gorm:"size:50;not null;index"`
	CreatedAt time.Time
}

func (c *ContactMessage) TableName() string {
	return "contact_messages"
}

func (c *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = StatusNew
	}
	return nil
}

func (c *ContactMessage) ToMap() map[string]any {
	return map[string]any{
		"id":         c.ID,
		"name":       c.Name,
		"email":      c.Email,
		"phone":      c.Phone,
		"subject":    c.Subject,
		"message":    c.Message,
		"status":     c.Status,
		"created_at": formatTime(c.CreatedAt),
	}
}

type ContactPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Subject *string
	Message *string
	Status  *string
}

func (p ContactPatch) ValidateCreate() error {
	for _, f := range []struct {
		name  string
		value *string
	}{
		{"name", p.Name},
		{"email", p.Email},
		{"subject", p.Subject},
		{"message", p.Message},
	} {
		if blank(f.value) {
			return Required(f.name)
		}
	}
	return nil
}

func (p ContactPatch) apply(dst *ContactMessage) {
	if p.Name != nil {
		dst.Name = strings.TrimSpace(*p.Name)
	}
	if p.Email != nil {
		dst.Email = strings.TrimSpace(*p.Email)
	}
	if p.Phone != nil {
		dst.Phone = strings.TrimSpace(*p.Phone)
	}
	if p.Subject != nil {
		dst.Subject = strings.TrimSpace(*p.Subject)
	}
	if p.Message != nil {
		dst.Message = strings.TrimSpace(*p.Message)
	}
	if p.Status != nil {
		dst.Status = *p.Status
	}
}
