package reportfmt

import (
	"encoding/json"
	"sort"
)

// DeepMerge merges override into base, recursing into nested objects.
// Scalars and arrays in override replace the base value wholesale. Neither
// input map is modified.
func DeepMerge(base, override map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(base))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		if ov, ok := v.(map[string]interface{}); ok {
			if bv, ok := out[k].(map[string]interface{}); ok {
				out[k] = DeepMerge(bv, ov)
				continue
			}
		}
		out[k] = v
	}
	return out
}

// configToMap flattens a config into the generic tree DeepMerge works on.
func configToMap(cfg ReportConfig) (map[string]interface{}, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func configFromMap(m map[string]interface{}) (ReportConfig, error) {
	var cfg ReportConfig
	data, err := json.Marshal(m)
	if err != nil {
		return cfg, err
	}
	err = json.Unmarshal(data, &cfg)
	return cfg, err
}

// unknownKeys returns the dotted paths present in override but absent from
// base, sorted for stable reporting.
func unknownKeys(base, override map[string]interface{}, prefix string) []string {
	var unknown []string
	for k, v := range override {
		bv, known := base[k]
		if !known {
			unknown = append(unknown, prefix+k)
			continue
		}
		if ov, ok := v.(map[string]interface{}); ok {
			if bm, ok := bv.(map[string]interface{}); ok {
				unknown = append(unknown, unknownKeys(bm, ov, prefix+k+".")...)
			}
		}
	}
	sort.Strings(unknown)
	return unknown
}

// MergeConfig applies a partial configuration tree over the defaults and
// returns the complete result. Unknown keys are logged and ignored, unless
// strict mode is on, in which case they are an error.
func MergeConfig(override map[string]interface{}) (ReportConfig, error) {
	defaults, err := configToMap(DefaultConfig())
	if err != nil {
		return ReportConfig{}, NewConfigError("", "encoding defaults", err)
	}
	if unknown := unknownKeys(defaults, override, ""); len(unknown) > 0 {
		if GetSettings().StrictMode {
			ve := &ValidationError{}
			for _, k := range unknown {
				ve.Issues = append(ve.Issues, ValidationIssue{Field: k, Message: "unknown configuration key"})
			}
			return ReportConfig{}, ve
		}
		for _, k := range unknown {
			GetLogger().Warn("ignoring unknown configuration key %q", k)
		}
	}
	merged := DeepMerge(defaults, override)
	cfg, err := configFromMap(merged)
	if err != nil {
		return ReportConfig{}, NewConfigError("", "decoding merged configuration", err)
	}
	return cfg, nil
}

// LoadConfigJSON parses a JSON document containing a partial configuration
// and merges it over the defaults. An empty or all-default document yields
// exactly DefaultConfig().
func LoadConfigJSON(data []byte) (ReportConfig, error) {
	var override map[string]interface{}
	if err := json.Unmarshal(data, &override); err != nil {
		return ReportConfig{}, NewConfigError("", "parsing JSON", err)
	}
	return MergeConfig(override)
}

// SaveConfigJSON serializes a config as indented JSON. The output parses
// back to an identical config via LoadConfigJSON.
func SaveConfigJSON(cfg ReportConfig) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, NewConfigError("", "encoding JSON", err)
	}
	return append(data, '\n'), nil
}
