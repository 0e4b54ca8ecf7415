/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package helpers

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadValuesFile reads the values of a yaml, json or toml file. The format
// is selected from the extension.
func LoadValuesFile(file string) (map[string]interface{}, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("error on read values file %s: %s",
			file, err.Error())
	}

	ans := make(map[string]interface{}, 0)

	switch strings.ToLower(filepath.Ext(file)) {
	case ".yml", ".yaml":
		err = yaml.Unmarshal(data, &ans)
	case ".json":
		err = json.Unmarshal(data, &ans)
	case ".toml":
		err = toml.Unmarshal(data, &ans)
	default:
		return nil, fmt.Errorf("unsupported values file %s", file)
	}
	if err != nil {
		return nil, fmt.Errorf("error on parse values file %s: %s",
			file, err.Error())
	}

	return ans, nil
}

// ParsePairs parses a list of name=value entries.
func ParsePairs(pairs []string) (map[string]string, error) {
	ans := make(map[string]string, len(pairs))

	for _, p := range pairs {
		idx := strings.Index(p, "=")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid entry %s: expected name=value", p)
		}
		ans[strings.TrimSpace(p[:idx])] = p[idx+1:]
	}

	return ans, nil
}

// MergeValues copies the values of every map in order: later maps win.
func MergeValues(maps ...map[string]interface{}) map[string]interface{} {
	ans := make(map[string]interface{}, 0)
	for _, m := range maps {
		for k, v := range m {
			ans[k] = v
		}
	}
	return ans
}
