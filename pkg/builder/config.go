package builder

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ExportConfig collects the option set of an export pass in one value,
// passed explicitly into the functions that need it.
type ExportConfig struct {
	// Flip reverses triangle winding on hand-off.
	Flip bool `yaml:"flip"`
	// Double emits every triangle twice, once per side.
	Double bool `yaml:"double"`
	// MaxTriangles caps the triangles per output batch.
	MaxTriangles int `yaml:"max_triangles"`

	// Epsilons are passed through opaquely to the external BSP builder.
	PointEpsilon float32 `yaml:"point_epsilon"`
	PlaneEpsilon float32 `yaml:"plane_epsilon"`
	SplitEpsilon float32 `yaml:"split_epsilon"`
}

// DefaultConfig returns the export defaults.
func DefaultConfig() ExportConfig {
	return ExportConfig{
		MaxTriangles: 12000,
		PointEpsilon: 1e-6,
		PlaneEpsilon: 1e-5,
		SplitEpsilon: 1e-5,
	}
}

// ParseConfig decodes an ExportConfig from YAML, filling unset fields
// with the defaults.
func ParseConfig(data []byte) (ExportConfig, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ExportConfig{}, errors.Wrap(err, "failed to parse export config")
	}

	if cfg.MaxTriangles <= 0 {
		cfg.MaxTriangles = DefaultConfig().MaxTriangles
	}

	return cfg, nil
}
