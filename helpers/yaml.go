package helpers

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spektr-org/quiz/engine"
)

// familiesDocument is the keyed YAML/JSON form: {families: [...]}.
type familiesDocument struct {
	Families []engine.Family `yaml:"families"`
}

// ParseFamiliesYAML parses a YAML or JSON document into families.
//
// Both a bare list and a document with a top-level "families" key are
// accepted:
//
//	families:
//	  - id: 1
//	    persons: [{age: 10}, {age: 20}]
//	  - id: 2
//	    persons: []
func ParseFamiliesYAML(data []byte) ([]engine.Family, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse families document: %w", err)
	}
	if len(node.Content) == 0 {
		return []engine.Family{}, nil
	}

	var families []engine.Family
	switch root := node.Content[0]; root.Kind {
	case yaml.SequenceNode:
		if err := root.Decode(&families); err != nil {
			return nil, fmt.Errorf("failed to decode families list: %w", err)
		}
	case yaml.MappingNode:
		var doc familiesDocument
		if err := root.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode families document: %w", err)
		}
		families = doc.Families
	default:
		return nil, fmt.Errorf("families document must be a list or a mapping, got %s", kindName(root.Kind))
	}

	if families == nil {
		families = []engine.Family{}
	}
	for _, f := range families {
		for _, p := range f.Persons {
			if p.Age < 0 {
				return nil, fmt.Errorf("family %d: age %d is negative", f.ID, p.Age)
			}
		}
	}
	return families, nil
}

// LoadFamilies reads a families file, choosing the parser by extension
// (.csv, .yaml, .yml, .json).
func LoadFamilies(path string) ([]engine.Family, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read families file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return ParseFamiliesCSV(data)
	case ".yaml", ".yml", ".json":
		return ParseFamiliesYAML(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	default:
		return nil, fmt.Errorf("unsupported families file extension %q", ext)
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	}
	return "unknown"
}
