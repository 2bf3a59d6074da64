package transforms

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var transforms = defaultTransforms()

// SetupClient resets the active transforms to the built in set
func SetupClient() {
	transforms = defaultTransforms()
}

func defaultTransforms() []*TransformDefinition {
	var defaults []*TransformDefinition

	// LNER is displayed by its short name
	defaults = append(defaults, &TransformDefinition{
		Type: "Record",
		Match: map[string]string{
			"Operator": "London North Eastern Railway",
		},
		Data: map[string]interface{}{
			"Operator": "LNER",
		},
	})

	return defaults
}

// LoadFile appends every transform document in a YAML file to the active set
func LoadFile(path string) error {
	transformYaml, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(transformYaml))

	count := 0
	for {
		var transformDefinition TransformDefinition
		err := decoder.Decode(&transformDefinition)
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}

		transforms = append(transforms, &transformDefinition)
		count += 1
	}

	log.Info().Str("path", path).Int("count", count).Msg("Loaded transforms")

	return nil
}
