// Package overrides persists the manual name mappings that win over
// fuzzy clustering, one map per category, as a JSON file edited
// through the dashboard.
package overrides

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Sabinoze00/logbook-aziendale/pkg/models/domain"
)

type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the override maps. A missing file is not an error: it
// means nobody has authored overrides yet, so every category is empty.
func (s *Store) Load() (domain.CategoryOverrides, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.EmptyOverrides(), nil
		}
		return domain.CategoryOverrides{}, fmt.Errorf("read overrides %s: %w", s.path, err)
	}

	o := domain.EmptyOverrides()
	if err := json.Unmarshal(data, &o); err != nil {
		return domain.CategoryOverrides{}, fmt.Errorf("parse overrides %s: %w", s.path, err)
	}
	return withMaps(o), nil
}

// Save writes the override maps, creating the file when absent.
func (s *Store) Save(o domain.CategoryOverrides) error {
	data, err := json.MarshalIndent(withMaps(o), "", "  ")
	if err != nil {
		return fmt.Errorf("encode overrides: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write overrides %s: %w", s.path, err)
	}
	return nil
}

// withMaps replaces nil category maps (explicit nulls in the file,
// partial payloads from the API) with empty ones.
func withMaps(o domain.CategoryOverrides) domain.CategoryOverrides {
	if o.Clients == nil {
		o.Clients = map[string]string{}
	}
	if o.Collaborators == nil {
		o.Collaborators = map[string]string{}
	}
	if o.Departments == nil {
		o.Departments = map[string]string{}
	}
	if o.MacroActivities == nil {
		o.MacroActivities = map[string]string{}
	}
	if o.MicroActivities == nil {
		o.MicroActivities = map[string]string{}
	}
	return o
}
