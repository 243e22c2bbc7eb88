package catalog

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for calendar dates in the dataset and API.
const dateLayout = "2006-01-02"

// Date is a calendar date that marshals to ISO 8601 (YYYY-MM-DD) on the wire.
// Dataset dates carry no time-of-day component, so the underlying time.Time
// is always midnight UTC.
type Date struct {
	time.Time
}

// NewDate creates a Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON parses a YYYY-MM-DD string.
// Malformed dates are a dataset fault and surface as a load error.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	d.Time = t
	return nil
}

// MarshalJSON renders the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

// SupportStatus is the lifecycle stage of a device.
//
// The set of valid statuses is data-driven: the dataset's
// support_status_definitions map defines the members, and Load rejects any
// device whose status is not a defined key. The constants below cover the
// statuses Apple publishes today but are not a closed list.
type SupportStatus string

// Well-known support statuses.
const (
	StatusSupported SupportStatus = "supported"
	StatusVintage   SupportStatus = "vintage"
	StatusObsolete  SupportStatus = "obsolete"
)

// Device represents one MacBook hardware model in the catalog.
type Device struct {
	ModelName            string        `json:"model_name"`
	ModelID              string        `json:"model_id"`
	ReleaseDate          Date          `json:"release_date"`
	SupportStatus        SupportStatus `json:"support_status"`
	SupportedEndDate     Date          `json:"supported_end_date"`
	LatestMacOSSupported string        `json:"latest_macos_supported"`
}

// Group names one of the two model families, or their union.
type Group string

// Group values.
const (
	GroupAir Group = "air"
	GroupPro Group = "pro"
	GroupAll Group = "all"
)

// ParseGroup resolves a device-type query value to a Group.
// Matching is case-insensitive; absent or unrecognised values resolve to
// GroupAll rather than an error, so clients that pass a bad type silently
// get the full catalog.
func ParseGroup(s string) Group {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "air":
		return GroupAir
	case "pro":
		return GroupPro
	default:
		return GroupAll
	}
}

// Dataset is the on-disk shape of the catalog source document.
type Dataset struct {
	MacbookModels     ModelGroups       `json:"macbook_models"`
	StatusDefinitions map[string]string `json:"support_status_definitions"`
	Notes             map[string]any    `json:"notes"`
}

// ModelGroups holds the two disjoint model families.
type ModelGroups struct {
	MacbookAir []Device `json:"macbook_air"`
	MacbookPro []Device `json:"macbook_pro"`
}
