package utils

import (
	"encoding/json"
	"fmt"
)

// MergeOptions flattens body into a generic JSON object and overlays the
// given options on top, option keys winning on collision. Adapters use it to
// pass provider-specific parameters through to the vendor request without
// modeling every vendor knob in the wire structs. A nil or empty options map
// returns the body unchanged.
func MergeOptions(body any, options map[string]any) (any, error) {
	if len(options) == 0 {
		return body, nil
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request for option merge: %w", err)
	}

	merged := map[string]any{}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return nil, fmt.Errorf("flatten request for option merge: %w", err)
	}

	for k, v := range options {
		merged[k] = v
	}
	return merged, nil
}
