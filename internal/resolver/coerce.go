package resolver

import (
	"strconv"

	"github.com/MKhiriev/go-scope-config/models"
)

// coerceValue turns the textual value of an env var or dotenv entry into a
// typed scalar: "true"/"false" become bool, numeric literals become float64,
// everything else stays a string. Coercion cannot fail — an unparseable
// value is simply a string.
func coerceValue(raw string) any {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return n
	}
	return raw
}

// coerceMapping applies coerceValue to every entry of a flat string map.
func coerceMapping(raw map[string]string) models.ConfigMap {
	out := make(models.ConfigMap, len(raw))
	for k, v := range raw {
		out[k] = coerceValue(v)
	}
	return out
}
