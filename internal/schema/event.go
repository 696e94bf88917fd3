package schema

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gosimple/slug"
)

// Stored forms of event date and time.
const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

var dateLayouts = []string{
	DateFormat,
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"02/01/2006",
}

var timeLayouts = []string{
	TimeFormat,
	"3:04 PM",
	"3:04PM",
	"3 PM",
	"3PM",
}

var validate = validator.New()

// EventInput carries the client-settable fields of an event. Normalize must
// run before Validate: it derives Slug from Title and brings Date, Time,
// Agenda and Tags into their stored forms.
type EventInput struct {
	Title       string   `json:"title" validate:"required"`
	Slug        string   `json:"-"`
	Description string   `json:"description" validate:"required"`
	Overview    string   `json:"overview" validate:"required"`
	Image       string   `json:"image" validate:"required"`
	Venue       string   `json:"venue" validate:"required"`
	Location    string   `json:"location" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	Time        string   `json:"time" validate:"required"`
	Mode        string   `json:"mode" validate:"required"`
	Audience    string   `json:"audience" validate:"required"`
	Agenda      []string `json:"agenda" validate:"required,min=1,dive,required"`
	Organizer   string   `json:"organizer" validate:"required"`
	Tags        []string `json:"tags" validate:"required,min=1,dive,required"`
}

func (e *EventInput) Normalize() error {
	e.Title = strings.TrimSpace(e.Title)
	e.Description = strings.TrimSpace(e.Description)
	e.Overview = strings.TrimSpace(e.Overview)
	e.Image = strings.TrimSpace(e.Image)
	e.Venue = strings.TrimSpace(e.Venue)
	e.Location = strings.TrimSpace(e.Location)
	e.Mode = strings.TrimSpace(e.Mode)
	e.Audience = strings.TrimSpace(e.Audience)
	e.Organizer = strings.TrimSpace(e.Organizer)

	e.Slug = slug.Make(e.Title)

	if v := strings.TrimSpace(e.Date); v != "" {
		date, err := NormalizeDate(v)
		if err != nil {
			return err
		}
		e.Date = date
	}

	if v := strings.TrimSpace(e.Time); v != "" {
		t, err := NormalizeTime(v)
		if err != nil {
			return err
		}
		e.Time = t
	}

	e.Agenda = cleanAgenda(e.Agenda)
	e.Tags = cleanTags(e.Tags)

	return nil
}

func (e *EventInput) Validate() error {
	return validate.Struct(e)
}

// NormalizeDate parses a date in one of the accepted layouts and returns it
// as YYYY-MM-DD.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateFormat), nil
		}
	}

	return "", fmt.Errorf("invalid date %q: expected format YYYY-MM-DD", s)
}

// NormalizeTime parses a 24-hour or 12-hour clock time and returns it as
// 24-hour HH:mm.
func NormalizeTime(s string) (string, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(TimeFormat), nil
		}
	}

	return "", fmt.Errorf("invalid time %q: expected format HH:mm", s)
}

// cleanAgenda trims items and drops blanks, preserving order and duplicates.
func cleanAgenda(items []string) []string {
	out := make([]string, 0, len(items))

	for _, it := range items {
		it = strings.TrimSpace(it)
		if it == "" {
			continue
		}
		out = append(out, it)
	}

	return out
}

// cleanTags trims, lowercases and de-duplicates, keeping first occurrence
// order.
func cleanTags(items []string) []string {
	out := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))

	for _, it := range items {
		it = strings.ToLower(strings.TrimSpace(it))
		if it == "" {
			continue
		}
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}

	return out
}
