// Package planner holds the meal plan form contract: field validation and
// the small date/selection helpers the form shares with the UI.
package planner

import (
	"net/mail"
	"slices"
	"strings"
	"time"

	"forkful/internal/model"
)

const (
	minTitleLength = 3
	minServings    = 1
	maxServings    = 20
)

// Validate checks a plan form and returns field-level errors keyed by
// field name. An empty map means the form may be submitted.
func Validate(form model.PlanForm) map[string]string {
	errs := make(map[string]string)

	if len(strings.TrimSpace(form.Title)) < minTitleLength {
		errs["title"] = "Title must be at least 3 characters."
	}

	email := strings.TrimSpace(form.Email)
	if email == "" {
		errs["email"] = "Contact email is required."
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "Enter a valid email address."
	}

	if form.Date == "" {
		errs["date"] = "Cooking date is required."
	} else if ParseISODate(form.Date) == nil {
		errs["date"] = "Use the YYYY-MM-DD date format."
	}

	if form.Servings < minServings || form.Servings > maxServings {
		errs["servings"] = "Servings must be between 1 and 20."
	}

	if form.Category == "" {
		errs["category"] = "Category is required."
	}
	if form.Area == "" {
		errs["area"] = "Cuisine is required."
	}

	return errs
}

// Today returns the current date as an ISO date string.
func Today() string {
	return time.Now().Format("2006-01-02")
}

// ResolveValue keeps the current selection if the options still offer it,
// otherwise falls back to the first option. No options yields "".
func ResolveValue(current string, options []string) string {
	if len(options) == 0 {
		return ""
	}
	if current != "" && slices.Contains(options, current) {
		return current
	}
	return options[0]
}

// FormatISODate formats a time as an ISO date string.
func FormatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseISODate parses an ISO date string, returning nil when malformed.
func ParseISODate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}
