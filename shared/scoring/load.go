package scoring

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/Bipul-Dubey/house-price-predictor/shared/schema"
)

// LoadPipeline reads a pipeline artifact from path and compiles it against reg.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
func LoadPipeline(path string, reg *schema.Registry) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	spec, err := DecodePipelineSpec(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("failed to decode model artifact %s: %w", path, err)
	}

	p, err := NewPipeline(spec, reg)
	if err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return p, nil
}

// DecodePipelineSpec decodes data according to ext. Unknown keys are rejected.
func DecodePipelineSpec(data []byte, ext string) (PipelineSpec, error) {
	var spec PipelineSpec

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(data, &spec, yaml.Strict()); err != nil {
			return PipelineSpec{}, err
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&spec); err != nil {
			return PipelineSpec{}, err
		}
	}
	return spec, nil
}
