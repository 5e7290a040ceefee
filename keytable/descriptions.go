package keytable

import (
	_ "embed"
	"fmt"
	"maps"
	"sync"

	"github.com/goccy/go-yaml"
)

//go:embed descriptions.yaml
var descriptionsYAML []byte

var loadDescriptions = sync.OnceValue(func() map[string]string {
	descs, err := parseDescriptions(descriptionsYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded descriptions.yaml: %v", err))
	}

	return descs
})

func parseDescriptions(data []byte) (map[string]string, error) {
	descs := map[string]string{}

	err := yaml.Unmarshal(data, &descs)
	if err != nil {
		return nil, err
	}

	return descs, nil
}

// Descriptions returns a copy of the built-in description table.
func Descriptions() map[string]string {
	return maps.Clone(loadDescriptions())
}

// Describe returns the built-in description for key, if any.
func Describe(key string) (string, bool) {
	desc, ok := loadDescriptions()[key]

	return desc, ok
}
