package reportfmt

import (
	"gopkg.in/yaml.v3"
)

// LoadConfigYAML parses a YAML document containing a partial configuration
// and merges it over the defaults, with the same key names and semantics as
// the JSON flavor.
func LoadConfigYAML(data []byte) (ReportConfig, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return ReportConfig{}, NewConfigError("", "parsing YAML", err)
	}
	return MergeConfig(normalizeYAML(raw))
}

// SaveConfigYAML serializes a config as YAML.
func SaveConfigYAML(cfg ReportConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, NewConfigError("", "encoding YAML", err)
	}
	return data, nil
}

// normalizeYAML rewrites the map[interface{}]interface{} nodes yaml.v3 can
// produce for complex keys into the map[string]interface{} tree the merge
// layer expects.
func normalizeYAML(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = normalizeYAMLValue(v)
	}
	return out
}

func normalizeYAMLValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return normalizeYAML(val)
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			if ks, ok := k.(string); ok {
				out[ks] = normalizeYAMLValue(inner)
			}
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = normalizeYAMLValue(inner)
		}
		return out
	default:
		return v
	}
}
