package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/search-menu/internal/menu"
	"github.com/atomicstack/search-menu/internal/search"
)

// typesFile is the on-disk layout of a search types file:
//
//	types:
//	  - title: Expenses
//	    icon: receipt
//	    query: type:expense status:all
type typesFile struct {
	Types []typeEntry `yaml:"types"`
}

type typeEntry struct {
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
	Query string `yaml:"query"`
}

var knownIcons = map[search.Icon]struct{}{
	search.IconReceipt:  {},
	search.IconFilters:  {},
	search.IconBookmark: {},
	search.IconDocument: {},
	search.IconChat:     {},
	search.IconSuitcase: {},
	search.IconCheckbox: {},
	search.IconMoney:    {},
}

// LoadTypes reads the search type definitions from path. An empty path
// yields the built-in types.
func LoadTypes(path string) ([]menu.TypeDefinition, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return menu.DefaultTypes(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read types file: %w", err)
	}
	return ParseTypes(data)
}

// ParseTypes decodes a types file. Entries without an icon use the receipt.
func ParseTypes(data []byte) ([]menu.TypeDefinition, error) {
	var file typesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse types file: %w", err)
	}
	defs := make([]menu.TypeDefinition, 0, len(file.Types))
	for _, entry := range file.Types {
		icon := search.Icon(strings.ToLower(strings.TrimSpace(entry.Icon)))
		if icon == search.IconNone {
			icon = search.IconReceipt
		}
		defs = append(defs, menu.TypeDefinition{
			Title: strings.TrimSpace(entry.Title),
			Icon:  icon,
			Query: strings.TrimSpace(entry.Query),
		})
	}
	if err := ValidateTypes(defs); err != nil {
		return nil, err
	}
	return defs, nil
}

// ValidateTypes rejects empty lists, blank fields, unknown icons and
// duplicate titles.
func ValidateTypes(defs []menu.TypeDefinition) error {
	if len(defs) == 0 {
		return errors.New("at least one search type is required")
	}
	seen := make(map[string]struct{}, len(defs))
	for i, def := range defs {
		if def.Title == "" {
			return fmt.Errorf("search type %d: title is required", i+1)
		}
		if def.Query == "" {
			return fmt.Errorf("search type %q: query is required", def.Title)
		}
		if _, ok := knownIcons[def.Icon]; !ok {
			return fmt.Errorf("search type %q: unknown icon %q", def.Title, def.Icon)
		}
		key := strings.ToLower(def.Title)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("search type %q is defined twice", def.Title)
		}
		seen[key] = struct{}{}
	}
	return nil
}
