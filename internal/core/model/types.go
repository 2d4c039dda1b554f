package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

var (
	// ErrInvalidHours is returned when an hour value falls outside (0, 24].
	ErrInvalidHours = errors.New("hours must be greater than 0 and at most 24")
	// ErrMissingFriendlyName is returned when a charge code has no display name.
	ErrMissingFriendlyName = errors.New("charge code requires a friendly name")
	// ErrMissingName is returned when a template has no name.
	ErrMissingName = errors.New("template requires a name")
)

// MaxEntryHours is the hard per-entry ceiling, independent of the
// configurable daily cap enforced by the store.
const MaxEntryHours = 24

// ChargeCode is an accounting identifier that time is billed against. Only
// FriendlyName is required; the accounting attributes are free text taken
// verbatim from the reference file.
type ChargeCode struct {
	ID              string `json:"id"`
	FriendlyName    string `json:"friendly_name"`
	Percent         string `json:"percent,omitempty"`
	TaskSource      string `json:"task_source,omitempty"`
	Task            string `json:"task,omitempty"`
	SubTask         string `json:"sub_task,omitempty"`
	OperatingUnit   string `json:"operating_unit,omitempty"`
	Process         string `json:"process,omitempty"`
	Project         string `json:"project,omitempty"`
	Activity        string `json:"activity,omitempty"`
	CustomerSegment string `json:"customer_segment,omitempty"`
	Active          bool   `json:"active"`
	CreatedAt       string `json:"created_at"`
}

// NewChargeCode creates an active charge code with a fresh identifier.
func NewChargeCode(friendlyName string) (ChargeCode, error) {
	friendlyName = strings.TrimSpace(friendlyName)
	if friendlyName == "" {
		return ChargeCode{}, ErrMissingFriendlyName
	}
	return ChargeCode{
		ID:           uuid.NewString(),
		FriendlyName: friendlyName,
		Active:       true,
		CreatedAt:    time.Now().Format(time.RFC3339),
	}, nil
}

// attributeLabels pairs each accounting attribute with its display label, in
// the order they are rendered.
type attribute struct {
	label string
	value func(ChargeCode) string
}

var attributes = []attribute{
	{"Percent", func(c ChargeCode) string { return c.Percent }},
	{"Task Source", func(c ChargeCode) string { return c.TaskSource }},
	{"Task", func(c ChargeCode) string { return c.Task }},
	{"SubTask", func(c ChargeCode) string { return c.SubTask }},
	{"Operating Unit", func(c ChargeCode) string { return c.OperatingUnit }},
	{"Process", func(c ChargeCode) string { return c.Process }},
	{"Project", func(c ChargeCode) string { return c.Project }},
	{"Activity", func(c ChargeCode) string { return c.Activity }},
	{"Customer Segment", func(c ChargeCode) string { return c.CustomerSegment }},
}

// FullCodeString renders the populated accounting attributes as a single
// copy-pasteable line.
func (c ChargeCode) FullCodeString() string {
	var parts []string
	for _, attr := range attributes {
		if v := attr.value(c); v != "" {
			parts = append(parts, attr.label+": "+v)
		}
	}
	if len(parts) == 0 {
		return "No charge code details"
	}
	return strings.Join(parts, " | ")
}

// TimeEntry is a single block of hours logged against a charge code on a
// calendar date. ChargeCodeName is denormalized so history still displays
// after the reference file changes.
type TimeEntry struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	ChargeCodeID   string  `json:"charge_code_id"`
	ChargeCodeName string  `json:"charge_code_name"`
	Hours          float64 `json:"hours"`
	Notes          string  `json:"notes,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// NewTimeEntry validates and creates a time entry for the given calendar day.
func NewTimeEntry(date time.Time, chargeCodeID, chargeCodeName string, hours float64, notes string) (TimeEntry, error) {
	if hours <= 0 || hours > MaxEntryHours {
		return TimeEntry{}, ErrInvalidHours
	}

	now := time.Now().Format(time.RFC3339)
	return TimeEntry{
		ID:             uuid.NewString(),
		Date:           util.FormatDate(date),
		ChargeCodeID:   chargeCodeID,
		ChargeCodeName: chargeCodeName,
		Hours:          hours,
		Notes:          notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// EntryTemplate is a saved shortcut for logging a recurring task with a
// preset charge code and hour count.
type EntryTemplate struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	ChargeCodeID   string  `json:"charge_code_id"`
	ChargeCodeName string  `json:"charge_code_name"`
	DefaultHours   float64 `json:"default_hours"`
	Notes          string  `json:"notes,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

// NewEntryTemplate validates and creates a quick-entry template.
func NewEntryTemplate(name, chargeCodeID, chargeCodeName string, defaultHours float64, notes string) (EntryTemplate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return EntryTemplate{}, ErrMissingName
	}
	if defaultHours <= 0 || defaultHours > MaxEntryHours {
		return EntryTemplate{}, ErrInvalidHours
	}

	return EntryTemplate{
		ID:             uuid.NewString(),
		Name:           name,
		ChargeCodeID:   chargeCodeID,
		ChargeCodeName: chargeCodeName,
		DefaultHours:   defaultHours,
		Notes:          notes,
		CreatedAt:      time.Now().Format(time.RFC3339),
	}, nil
}
