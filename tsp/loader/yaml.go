package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/baldhumanity/tsp-ga/tsp"
)

// yamlInstance is the YAML instance layout:
//
//	name: five-city
//	cities: [A, B, C, D, E]   # optional, defaults to the key order of distances
//	distances:
//	  A: {A: 0, B: 2, C: 9, D: 10, E: 15}
//	  ...
type yamlInstance struct {
	Name      string    `yaml:"name"`
	Cities    []string  `yaml:"cities"`
	Distances yaml.Node `yaml:"distances"`
}

// LoadYAML reads an instance from a YAML file. The instance is named after
// the file unless the document sets name.
func LoadYAML(path string) (*tsp.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read instance file '%s': %w", path, err)
	}
	inst, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse instance file '%s': %w", path, err)
	}
	if inst.Name == "" {
		inst.Name = instanceName(path)
	}
	return inst, nil
}

// ParseYAML reads an instance from YAML text.
func ParseYAML(data []byte) (*tsp.Instance, error) {
	var doc yamlInstance
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Distances.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: distances must be a mapping", tsp.ErrInvalidInput)
	}

	var dist map[string]map[string]float64
	if err := doc.Distances.Decode(&dist); err != nil {
		return nil, fmt.Errorf("%w: distances: %v", tsp.ErrInvalidInput, err)
	}

	cities := doc.Cities
	if len(cities) == 0 {
		// Mapping content alternates key and value nodes; keep document order
		// so the first key is the start city.
		for i := 0; i < len(doc.Distances.Content); i += 2 {
			cities = append(cities, doc.Distances.Content[i].Value)
		}
	}

	inst, err := tsp.NewInstance(cities, dist)
	if err != nil {
		return nil, err
	}
	inst.Name = doc.Name
	return inst, nil
}
