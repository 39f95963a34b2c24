package config

// documents.go loads the venue and menu JSON documents.  The original
// deployment configured the venue through executable config files; here
// the documents are declarative and schema-checked, and the reservation
// core only ever sees validated structures.

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/roysiu-gh/restam/internal/model"
)

// LoadVenue reads, parses and validates the venue document at path.
func LoadVenue(path string) (*model.Venue, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read venue config: %w", err)
	}
	var v model.Venue
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("parse venue config %s: %w", path, err)
	}
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("venue config %s: %w", path, err)
	}
	return &v, nil
}

// LoadMenu reads, parses and validates the menu document at path.  The
// document is a single JSON object mapping meal ids to meal attributes.
func LoadMenu(path string) (model.Menu, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu config: %w", err)
	}
	var m model.Menu
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse menu config %s: %w", path, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("menu config %s: %w", path, err)
	}
	return m, nil
}
