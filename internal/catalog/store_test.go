package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// testDataset returns a small valid dataset for store tests.
func testDataset() Dataset {
	return Dataset{
		MacbookModels: ModelGroups{
			MacbookAir: []Device{
				{
					ModelName:            "MacBook Air (13-inch, 2017)",
					ModelID:              "MacBookAir7,2",
					ReleaseDate:          NewDate(2017, time.June, 5),
					SupportStatus:        StatusVintage,
					SupportedEndDate:     NewDate(2025, time.June, 30),
					LatestMacOSSupported: "macOS Monterey 12",
				},
				{
					ModelName:            "MacBook Air (M1, 2020)",
					ModelID:              "MacBookAir10,1",
					ReleaseDate:          NewDate(2020, time.November, 17),
					SupportStatus:        StatusSupported,
					SupportedEndDate:     NewDate(2027, time.November, 30),
					LatestMacOSSupported: "macOS Tahoe 26",
				},
			},
			MacbookPro: []Device{
				{
					ModelName:            "MacBook Pro (15-inch, Mid 2010)",
					ModelID:              "MacBookPro6,2",
					ReleaseDate:          NewDate(2010, time.April, 13),
					SupportStatus:        StatusObsolete,
					SupportedEndDate:     NewDate(2017, time.April, 30),
					LatestMacOSSupported: "macOS High Sierra 10.13",
				},
				{
					ModelName:            "MacBook Pro (14-inch, 2021)",
					ModelID:              "MacBookPro18,3",
					ReleaseDate:          NewDate(2021, time.October, 26),
					SupportStatus:        StatusSupported,
					SupportedEndDate:     NewDate(2028, time.October, 31),
					LatestMacOSSupported: "macOS Tahoe 26",
				},
			},
		},
		StatusDefinitions: map[string]string{
			"supported": "Currently supported.",
			"vintage":   "Service subject to parts availability.",
			"obsolete":  "All hardware service discontinued.",
		},
		Notes: map[string]any{"source": "test"},
	}
}

func mustStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(testDataset())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestLoad_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "models.json")
	content := `{
		"macbook_models": {
			"macbook_air": [{
				"model_name": "MacBook Air (M1, 2020)",
				"model_id": "MacBookAir10,1",
				"release_date": "2020-11-17",
				"support_status": "supported",
				"supported_end_date": "2027-11-30",
				"latest_macos_supported": "macOS Tahoe 26"
			}],
			"macbook_pro": []
		},
		"support_status_definitions": {"supported": "Currently supported."},
		"notes": {"source": "test"}
	}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d, want 1", s.Count())
	}

	dev, err := s.Lookup("MacBookAir10,1")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got := dev.ReleaseDate.Format("2006-01-02"); got != "2020-11-17" {
		t.Errorf("release date = %s, want 2020-11-17", got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("Load should fail for a missing file")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load should fail for malformed JSON")
	}
}

func TestLoad_MalformedDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baddate.json")
	content := `{
		"macbook_models": {
			"macbook_air": [{
				"model_name": "x",
				"model_id": "id1",
				"release_date": "November 2020",
				"support_status": "supported",
				"supported_end_date": "2027-11-30",
				"latest_macos_supported": "x"
			}],
			"macbook_pro": []
		},
		"support_status_definitions": {"supported": "s"}
	}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("Load error = %v, want ErrInvalidDate", err)
	}
}

func TestNew_UnknownStatus(t *testing.T) {
	ds := testDataset()
	ds.MacbookModels.MacbookAir[0].SupportStatus = "retired"

	_, err := New(ds)
	if !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("New error = %v, want ErrUnknownStatus", err)
	}
}

func TestNew_DuplicateModelID(t *testing.T) {
	ds := testDataset()
	ds.MacbookModels.MacbookPro[0].ModelID = ds.MacbookModels.MacbookAir[0].ModelID

	_, err := New(ds)
	if !errors.Is(err, ErrDuplicateModelID) {
		t.Fatalf("New error = %v, want ErrDuplicateModelID", err)
	}
}

func TestNew_EmptyDataset(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Dataset)
	}{
		{
			name:   "no definitions",
			mutate: func(ds *Dataset) { ds.StatusDefinitions = nil },
		},
		{
			name: "no devices",
			mutate: func(ds *Dataset) {
				ds.MacbookModels.MacbookAir = nil
				ds.MacbookModels.MacbookPro = nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := testDataset()
			tt.mutate(&ds)
			if _, err := New(ds); !errors.Is(err, ErrEmptyDataset) {
				t.Errorf("New error = %v, want ErrEmptyDataset", err)
			}
		})
	}
}

func TestStore_DevicesGroups(t *testing.T) {
	s := mustStore(t)

	air := s.Devices(GroupAir)
	pro := s.Devices(GroupPro)
	all := s.Devices(GroupAll)

	if len(air) != 2 || len(pro) != 2 {
		t.Fatalf("group sizes = %d air, %d pro, want 2 each", len(air), len(pro))
	}
	if len(all) != 4 {
		t.Fatalf("union size = %d, want 4", len(all))
	}

	// Union order is all air devices, then all pro devices.
	wantOrder := []string{"MacBookAir7,2", "MacBookAir10,1", "MacBookPro6,2", "MacBookPro18,3"}
	for i, id := range wantOrder {
		if all[i].ModelID != id {
			t.Errorf("all[%d].ModelID = %s, want %s", i, all[i].ModelID, id)
		}
	}
}

func TestStore_EmptyGroupIsNonNil(t *testing.T) {
	ds := testDataset()
	ds.MacbookModels.MacbookPro = nil

	s, err := New(ds)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	pro := s.Devices(GroupPro)
	if pro == nil {
		t.Error("empty group returned a nil slice")
	}
	if len(pro) != 0 {
		t.Errorf("empty group returned %d devices", len(pro))
	}
}

func TestStore_DevicesReturnsCopy(t *testing.T) {
	s := mustStore(t)

	devices := s.Devices(GroupAll)
	devices[0].ModelName = "mutated"
	devices[0].SupportStatus = "mutated"

	again := s.Devices(GroupAll)
	if again[0].ModelName == "mutated" {
		t.Error("mutating a returned slice must not affect the store")
	}
}

func TestStore_LookupRoundTrip(t *testing.T) {
	s := mustStore(t)

	// Every ID in the dataset must be retrievable and return itself.
	for _, d := range s.Devices(GroupAll) {
		got, err := s.Lookup(d.ModelID)
		if err != nil {
			t.Fatalf("Lookup(%s): %v", d.ModelID, err)
		}
		if got.ModelID != d.ModelID {
			t.Errorf("Lookup(%s).ModelID = %s", d.ModelID, got.ModelID)
		}
	}
}

func TestStore_LookupNotFound(t *testing.T) {
	s := mustStore(t)

	_, err := s.Lookup("NoSuchId")
	if !errors.Is(err, ErrModelNotFound) {
		t.Fatalf("Lookup error = %v, want ErrModelNotFound", err)
	}
}

func TestStore_MetadataCopies(t *testing.T) {
	s := mustStore(t)

	defs := s.StatusDefinitions()
	defs["supported"] = "mutated"
	if s.StatusDefinitions()["supported"] == "mutated" {
		t.Error("mutating returned definitions must not affect the store")
	}

	notes := s.Notes()
	notes["source"] = "mutated"
	if s.Notes()["source"] == "mutated" {
		t.Error("mutating returned notes must not affect the store")
	}
}

func TestParseGroup(t *testing.T) {
	tests := []struct {
		input string
		want  Group
	}{
		{"air", GroupAir},
		{"AIR", GroupAir},
		{" pro ", GroupPro},
		{"Pro", GroupPro},
		{"", GroupAll},
		{"macbook", GroupAll},
		{"everything", GroupAll},
	}

	for _, tt := range tests {
		if got := ParseGroup(tt.input); got != tt.want {
			t.Errorf("ParseGroup(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
