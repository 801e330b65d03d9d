package compare

import (
	"encoding/json"
)

// FormatJSON renders the comparison as indented JSON.
func FormatJSON(c *Comparison) (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
