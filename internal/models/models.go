// Package models defines the content store entities.
package models

import (
	"time"

	"langart/internal/locale"

	"gorm.io/datatypes"
)

// SiteConfigID is the fixed primary key of the singleton settings row.
const SiteConfigID = 1

// Course is a language course offered by the school. Slug is the
// public-facing identifier used in URLs; changing it breaks existing links,
// which is a documented caller responsibility.
type Course struct {
	ID       uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug     string      `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Title    locale.Text `json:"title"`
	ShortTag locale.Text `json:"shortTag"`
	Image    string      `gorm:"type:varchar(512)" json:"image"`

	// Tiered pricing: base group, small group, individual
	Price       int `json:"price"`
	Price2      int `json:"price2"`
	Price3      int `json:"price3"`
	DailyPrice  int `json:"dailyPrice"`
	DailyPrice2 int `json:"dailyPrice2"`
	DailyPrice3 int `json:"dailyPrice3"`

	Duration         int `json:"duration"`       // weeks
	LessonDuration   int `json:"lessonDuration"` // minutes
	Breaks           int `json:"breaks"`
	StudentsInGroup  int `json:"studentsInGroup"`
	StudentsInGroup2 int `json:"studentsInGroup2"`
	StudentsInGroup3 int `json:"studentsInGroup3"`

	Certificates     locale.Text       `json:"certificates"`
	Ages             locale.Text       `json:"ages"`
	Rating           int               `gorm:"default:5" json:"rating"`
	Overview         locale.Text       `json:"overview"`
	WhatYouWillLearn locale.StringList `json:"whatYouWillLearn"`

	Reviews []Review `gorm:"constraint:OnDelete:CASCADE" json:"reviews"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Review is a student review attached to a course. Deleting the course
// removes its reviews; this is the only declared relation in the store.
type Review struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CourseID  uint      `gorm:"not null;index" json:"courseId"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	UserImage string    `gorm:"type:varchar(512)" json:"userImage"`
	Rating    int       `gorm:"default:5" json:"rating"`
	Review    string    `gorm:"type:text" json:"review"`
	CreatedAt time.Time `json:"createdAt"`
}

// Instructor is a teacher profile.
type Instructor struct {
	ID         uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug       string      `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Name       locale.Text `json:"name"`
	About      locale.Text `json:"about"`
	Image      string      `gorm:"type:varchar(512)" json:"image"`
	Experience int         `json:"experience"` // years
	Students   int         `json:"students"`   // students taught
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// Testimonial is a quote shown on the public site. Rating is 1..5.
type Testimonial struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      locale.Text `json:"name"`
	Role      locale.Text `json:"role"`
	Title     locale.Text `json:"title"`
	Content   locale.Text `json:"content"`
	Rating    int         `gorm:"default:5" json:"rating"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// PricingPlan is a tariff card: standard / focused / duo tiers with monthly
// and per-lesson prices. Order is the explicit sort key on public pages.
type PricingPlan struct {
	ID       uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    locale.Text       `json:"title"`
	Ages     locale.Text       `json:"ages"`
	Features locale.StringList `json:"features"`

	Price          int `json:"price"`
	PricePerLesson int `json:"pricePerLesson"`
	StudentsCount  int `json:"studentsCount"`

	FocusedPrice          int `json:"focusedPrice"`
	FocusedPricePerLesson int `json:"focusedPricePerLesson"`
	FocusedStudentsCount  int `json:"focusedStudentsCount"`

	DuoPrice          int `json:"duoPrice"`
	DuoPricePerLesson int `json:"duoPricePerLesson"`
	DuoStudentsCount  int `json:"duoStudentsCount"`

	Order     int       `gorm:"default:0;index" json:"order"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SiteConfig is the singleton settings row (ID fixed at SiteConfigID).
// Locations are display strings and intentionally not localized.
type SiteConfig struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	PhoneNumber  string                      `gorm:"type:varchar(64)" json:"phoneNumber"`
	Email        string                      `gorm:"type:varchar(255)" json:"email"`
	Locations    datatypes.JSONSlice[string] `json:"locations"`
	WorkingHours string                      `gorm:"type:varchar(64)" json:"workingHours"`
	Facebook     string                      `gorm:"type:varchar(512)" json:"facebook"`
	Instagram    string                      `gorm:"type:varchar(512)" json:"instagram"`
	Telegram     string                      `gorm:"type:varchar(512)" json:"telegram"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

// DefaultSiteConfig returns the row created when no settings exist yet.
func DefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		ID:           SiteConfigID,
		PhoneNumber:  "+998 90 123 45 67",
		Email:        "info@langart.uz",
		Locations:    datatypes.NewJSONSlice([]string{"Tashkent, Uzbekistan"}),
		WorkingHours: "09:00 - 18:00",
	}
}

// ContactSubmission is an inbound contact-form message. Only name and phone
// are required; everything else is optional free text.
type ContactSubmission struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone     string    `gorm:"type:varchar(64);not null" json:"phone"`
	Email     string    `gorm:"type:varchar(255)" json:"email"`
	Course    string    `gorm:"type:varchar(255)" json:"course"`
	Level     string    `gorm:"type:varchar(64)" json:"level"`
	Message   string    `gorm:"type:text" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// User is an admin account. PasswordHash is a bcrypt hash and is never
// serialized.
type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&Course{},
		&Review{},
		&Instructor{},
		&Testimonial{},
		&PricingPlan{},
		&SiteConfig{},
		&ContactSubmission{},
		&User{},
	}
}
