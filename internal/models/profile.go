package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type UserRole string

const (
	RoleMentee UserRole = "Mentee"
	RoleMentor UserRole = "Mentor"
)

// Onboarding progress. Only profiles at OnboardingComplete are matchable.
const (
	OnboardingNone     = 0
	OnboardingStarted  = 1
	OnboardingComplete = 2
)

type Profile struct {
	UserID   string   `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	FullName string   `gorm:"column:full_name;type:text" json:"full_name"`
	Bio      string   `gorm:"column:bio;type:text" json:"bio"`
	Goals    string   `gorm:"column:goals;type:text" json:"goals"`
	Role     UserRole `gorm:"column:role;type:text" json:"role"`

	TechStack pq.StringArray `gorm:"column:tech_stack;type:text[]" json:"tech_stack"`

	School   string `gorm:"column:school;type:text" json:"school,omitempty"`
	Major    string `gorm:"column:major;type:text" json:"major,omitempty"`
	JobTitle string `gorm:"column:job_title;type:text" json:"job_title,omitempty"`
	Company  string `gorm:"column:company;type:text" json:"company,omitempty"`
	GradYear int    `gorm:"column:grad_year" json:"grad_year,omitempty"`

	// JSONB: {"linkedin": ..., "github": ..., "portfolio": ...}
	Links datatypes.JSON `gorm:"column:links;type:jsonb" json:"links,omitempty"`

	OnboardingStatus int `gorm:"column:onboarding_status;default:0" json:"onboarding_status"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }
