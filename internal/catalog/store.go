package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store holds the parsed device catalog for the process lifetime.
//
// The store is populated once by Load and never mutated afterwards, so all
// read methods are safe for concurrent use without locking. Every accessor
// returns fresh slices and maps; callers can never reach the backing arrays.
type Store struct {
	air []Device
	pro []Device

	// all is the fixed union order: all of air, then all of pro.
	// This is the fallback ordering when no sort is requested.
	all []Device

	definitions map[string]string
	notes       map[string]any
}

// Load reads and validates the catalog dataset from a JSON file.
//
// A missing file, malformed JSON, unparseable date, unknown support status,
// or duplicate model ID is a startup fault: Load returns an error and the
// caller is expected to refuse to start rather than serve partial data.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset: %w", err)
	}

	return New(ds)
}

// New builds a Store from an already-decoded Dataset, validating it.
func New(ds Dataset) (*Store, error) {
	if len(ds.StatusDefinitions) == 0 {
		return nil, fmt.Errorf("%w: no support_status_definitions", ErrEmptyDataset)
	}
	if len(ds.MacbookModels.MacbookAir)+len(ds.MacbookModels.MacbookPro) == 0 {
		return nil, fmt.Errorf("%w: no devices", ErrEmptyDataset)
	}

	s := &Store{
		air:         append([]Device(nil), ds.MacbookModels.MacbookAir...),
		pro:         append([]Device(nil), ds.MacbookModels.MacbookPro...),
		definitions: make(map[string]string, len(ds.StatusDefinitions)),
		notes:       make(map[string]any, len(ds.Notes)),
	}
	for k, v := range ds.StatusDefinitions {
		s.definitions[k] = v
	}
	for k, v := range ds.Notes {
		s.notes[k] = v
	}

	s.all = make([]Device, 0, len(s.air)+len(s.pro))
	s.all = append(s.all, s.air...)
	s.all = append(s.all, s.pro...)

	// Validate at the load boundary: unknown statuses and duplicate IDs must
	// fail here, not surface silently at query time.
	seen := make(map[string]struct{}, len(s.all))
	for _, d := range s.all {
		if d.ModelID == "" {
			return nil, fmt.Errorf("%w: device %q has no model_id", ErrEmptyDataset, d.ModelName)
		}
		if _, ok := s.definitions[string(d.SupportStatus)]; !ok {
			return nil, fmt.Errorf("%w: %q on device %q", ErrUnknownStatus, d.SupportStatus, d.ModelID)
		}
		if _, ok := seen[d.ModelID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateModelID, d.ModelID)
		}
		seen[d.ModelID] = struct{}{}
	}

	return s, nil
}

// Devices returns the devices in the given group, in source order.
// GroupAll is the union: all air devices followed by all pro devices.
// The returned slice is a fresh copy, never nil even for an empty group.
func (s *Store) Devices(g Group) []Device {
	var src []Device
	switch g {
	case GroupAir:
		src = s.air
	case GroupPro:
		src = s.pro
	default:
		src = s.all
	}
	return append(make([]Device, 0, len(src)), src...)
}

// Lookup scans the union of both groups and returns the device with the
// given model ID. Returns ErrModelNotFound if no device matches.
func (s *Store) Lookup(modelID string) (*Device, error) {
	for i := range s.all {
		if s.all[i].ModelID == modelID {
			d := s.all[i]
			return &d, nil
		}
	}
	return nil, ErrModelNotFound
}

// Count returns the total number of devices across both groups.
func (s *Store) Count() int {
	return len(s.all)
}

// StatusDefinitions returns the status definition metadata as a fresh map.
func (s *Store) StatusDefinitions() map[string]string {
	out := make(map[string]string, len(s.definitions))
	for k, v := range s.definitions {
		out[k] = v
	}
	return out
}

// Notes returns the free-form dataset notes as a fresh map.
func (s *Store) Notes() map[string]any {
	out := make(map[string]any, len(s.notes))
	for k, v := range s.notes {
		out[k] = v
	}
	return out
}
