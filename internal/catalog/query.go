package catalog

import (
	"sort"
	"strings"
)

// Query operators.
//
// Each operator is a pure function: it treats its input as read-only,
// allocates a fresh output slice, and is the identity when its parameter is
// absent. Outputs are always non-nil, so an empty result serializes as a
// JSON array rather than null. Handlers compose them in a fixed order:
// group selection, status filter, search, sort.

// copyDevices returns a fresh, never-nil copy of the input.
func copyDevices(devices []Device) []Device {
	return append(make([]Device, 0, len(devices)), devices...)
}

// Sort orders.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// FilterByStatus returns the devices whose support status exactly equals the
// given value. The match is case-sensitive. An empty status is the identity;
// an unrecognised status yields an empty result, not an error.
func FilterByStatus(devices []Device, status string) []Device {
	if status == "" {
		return copyDevices(devices)
	}
	out := make([]Device, 0, len(devices))
	for _, d := range devices {
		if string(d.SupportStatus) == status {
			out = append(out, d)
		}
	}
	return out
}

// Search returns the devices where the term is a case-insensitive substring
// of the model name, model ID, or support status. An empty term is the
// identity.
func Search(devices []Device, term string) []Device {
	if term == "" {
		return copyDevices(devices)
	}
	needle := strings.ToLower(term)
	out := make([]Device, 0, len(devices))
	for _, d := range devices {
		if strings.Contains(strings.ToLower(d.ModelName), needle) ||
			strings.Contains(strings.ToLower(d.ModelID), needle) ||
			strings.Contains(strings.ToLower(string(d.SupportStatus)), needle) {
			out = append(out, d)
		}
	}
	return out
}

// sortKey extracts a comparable key from a device for one sort field.
// Date fields compare chronologically, everything else lexicographically.
type sortKey struct {
	str    func(Device) string
	isDate bool
	date   func(Device) Date
}

// sortKeys maps recognised sort_by field names to typed accessors.
// Field names match the JSON wire names of Device.
var sortKeys = map[string]sortKey{
	"model_name":             {str: func(d Device) string { return d.ModelName }},
	"model_id":               {str: func(d Device) string { return d.ModelID }},
	"support_status":         {str: func(d Device) string { return string(d.SupportStatus) }},
	"latest_macos_supported": {str: func(d Device) string { return d.LatestMacOSSupported }},
	"release_date":           {isDate: true, date: func(d Device) Date { return d.ReleaseDate }},
	"supported_end_date":     {isDate: true, date: func(d Device) Date { return d.SupportedEndDate }},
}

// SortBy returns the devices ordered by the named field.
//
// Order is "asc" or "desc"; anything else (including absent) means "desc",
// so larger/later values sort first by default. The sort is stable: devices
// with equal keys keep their relative source order.
//
// An empty or unrecognised field is a defined no-op that preserves the input
// order, rather than an error or an undefined comparison.
func SortBy(devices []Device, field, order string) []Device {
	out := copyDevices(devices)

	key, ok := sortKeys[field]
	if !ok {
		return out
	}

	asc := strings.EqualFold(order, OrderAsc)
	less := func(a, b Device) bool {
		if key.isDate {
			return key.date(a).Before(key.date(b).Time)
		}
		return key.str(a) < key.str(b)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return less(out[i], out[j])
		}
		return less(out[j], out[i])
	})
	return out
}
