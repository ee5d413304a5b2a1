package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
)

// LoadClusterFile loads a ClusterConfig from a path to a YAML file.
func LoadClusterFile(path string, expandEnv bool) (ClusterConfig, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return ClusterConfig{}, err
	}

	if expandEnv {
		contents = []byte(os.ExpandEnv(string(contents)))
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return ClusterConfig{}, err
	}

	config, err := LoadClusterBytes(contents)
	if err != nil {
		return ClusterConfig{}, err
	}

	config.RootDir = filepath.Dir(absPath)
	return config, nil
}

// LoadClusterBytes loads a ClusterConfig from YAML bytes.
func LoadClusterBytes(contents []byte) (ClusterConfig, error) {
	config := ClusterConfig{}
	err := unmarshalYAMLStrict(contents, &config)
	return config, err
}

// LoadPlanFile loads a PlanConfig from a path to a YAML file.
func LoadPlanFile(path string, expandEnv bool) (PlanConfig, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return PlanConfig{}, err
	}

	if expandEnv {
		contents = []byte(os.ExpandEnv(string(contents)))
	}

	return LoadPlanBytes(contents)
}

// LoadPlanBytes loads a PlanConfig from YAML bytes.
func LoadPlanBytes(contents []byte) (PlanConfig, error) {
	config := PlanConfig{}
	err := unmarshalYAMLStrict(contents, &config)
	return config, err
}

func unmarshalYAMLStrict(y []byte, o interface{}) error {
	jsonBytes, err := yaml.YAMLToJSON(y)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(jsonBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(o)
}
