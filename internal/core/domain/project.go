package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus indicates whether a project is still receiving updates.
type ProjectStatus string

const (
	ProjectActive   ProjectStatus = "active"
	ProjectArchived ProjectStatus = "archived"
)

// Profile is a WhatsApp-registered owner. Profiles are auto-provisioned the
// first time an unknown phone number messages the bot.
type Profile struct {
	ProfileID   string `json:"profileID"`
	PhoneNumber string `json:"phoneNumber"` // E.164, without the channel prefix
	Name        string `json:"name"`
	AuditFields
}

// Project is the construction project all WhatsApp mutations target. A
// profile has at most one active "default" project.
type Project struct {
	ProjectID    string          `json:"projectID"`
	ProfileID    string          `json:"profileID"`
	Name         string          `json:"name"`
	ProjectType  string          `json:"projectType"`
	Location     string          `json:"location"`
	StartDate    *time.Time      `json:"startDate,omitempty"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	CurrencyCode string          `json:"currencyCode"`
	Status       ProjectStatus   `json:"status"`
	AuditFields
}

// Category groups expenses for reporting and keyword auto-assignment.
type Category struct {
	CategoryID string `json:"categoryID"`
	ProfileID  string `json:"profileID"`
	Name       string `json:"name"`
	AuditFields
}
