package pipeline

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diarijajan/diari/internal/model"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed data/expenses.json
var defaultSeed []byte

// yamlRecord mirrors model.ExpenseRecord for YAML seeds. Cost is read as
// text so that decimal parsing stays exact.
type yamlRecord struct {
	ID        int64  `yaml:"id"`
	Name      string `yaml:"name"`
	Cost      string `yaml:"cost"`
	CreatedAt string `yaml:"created_at"`
}

// DefaultCollection returns the built-in sample collection.
func DefaultCollection() model.Collection {
	c, err := decodeJSON(defaultSeed)
	if err != nil {
		panic(fmt.Sprintf("embedded seed: %v", err))
	}
	return c
}

// Load returns the collection in path, or the built-in sample when path is empty.
func Load(path string) (model.Collection, error) {
	if path == "" {
		return DefaultCollection(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a seed collection from a .json, .yaml or .yml file.
// The file is only read; nothing is ever written back to it.
func LoadFile(path string) (model.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}

	var c model.Collection
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		c, err = decodeJSON(data)
	case ".yaml", ".yml":
		c, err = decodeYAML(data)
	default:
		return nil, fmt.Errorf("reading seed: unsupported extension %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parsing seed %s: %w", path, err)
	}
	return c, nil
}

func decodeJSON(data []byte) (model.Collection, error) {
	var c model.Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return c, nil
}

func decodeYAML(data []byte) (model.Collection, error) {
	var raw []yamlRecord
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	c := make(model.Collection, 0, len(raw))
	for _, r := range raw {
		cost := decimal.Zero
		if s := strings.TrimSpace(r.Cost); s != "" {
			d, err := decimal.NewFromString(s)
			if err != nil {
				return nil, fmt.Errorf("record %d: cost %q: %w", r.ID, r.Cost, err)
			}
			cost = d
		}
		c = append(c, model.ExpenseRecord{
			ID:        r.ID,
			Name:      r.Name,
			Cost:      cost,
			CreatedAt: r.CreatedAt,
		})
	}
	return c, nil
}
