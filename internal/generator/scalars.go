package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andrewkroh/gqljavagen/internal/javagen"
)

// ScalarsConfig holds custom scalar mappings loaded from scalars.yml.
//
//	scalars:
//	  - type_name: DateTime
//	    java_type: OffsetDateTime
//	    deserialize_expr: "OffsetDateTime.parse(jsonAsString({{expr}}, key))"
//	    imports: [java.time.OffsetDateTime]
type ScalarsConfig struct {
	Scalars []javagen.Scalar `yaml:"scalars"`
}

// DefaultScalars returns the mappings every run starts with.
func DefaultScalars() []javagen.Scalar {
	return []javagen.Scalar{javagen.DecimalScalar()}
}

// LoadScalars reads and parses a scalars.yml file.
func LoadScalars(path string) ([]javagen.Scalar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scalars config: %w", err)
	}

	var cfg ScalarsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scalars config: %w", err)
	}
	for _, s := range cfg.Scalars {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return cfg.Scalars, nil
}

// MergeScalars returns base with overrides applied. An override with the
// same type name replaces the base entry in place; others are appended.
func MergeScalars(base, overrides []javagen.Scalar) []javagen.Scalar {
	out := make([]javagen.Scalar, len(base))
	copy(out, base)

	index := make(map[string]int, len(out))
	for i, s := range out {
		index[s.TypeName] = i
	}
	for _, s := range overrides {
		if i, ok := index[s.TypeName]; ok {
			out[i] = s
			continue
		}
		index[s.TypeName] = len(out)
		out = append(out, s)
	}
	return out
}
