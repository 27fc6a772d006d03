// Package redact masks values whose key name looks credential-bearing.
package redact

import (
	"strings"

	"github.com/rabobank/bindingsview/model"
)

const Placeholder = "(redacted)"

// sensitiveTerms is matched by containment, not equality: "access_key_id" is
// redacted because it contains "key". Over-redacting is the policy here.
var sensitiveTerms = []string{
	"password", "passwd", "secret", "apikey", "api_key", "key", "token",
	"access_key", "secret_key", "certificate", "cert", "uri", "url",
}

func IsSensitive(key string) bool {
	lower := strings.ToLower(key)
	for _, term := range sensitiveTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// Value returns a structurally identical copy of v with every map entry under
// a sensitive key replaced by Placeholder. Scalars and nil pass through.
func Value(v interface{}) interface{} {
	switch t := v.(type) {
	case model.JSON:
		return model.JSON(redactMap(t))
	case map[string]interface{}:
		return redactMap(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = Value(e)
		}
		return out
	default:
		return v
	}
}

// Mapping is Value for the common case of a credentials/data map, keeping the
// caller free of type assertions.
func Mapping(m model.JSON) model.JSON {
	if m == nil {
		return nil
	}
	return model.JSON(redactMap(m))
}

func redactMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if IsSensitive(k) {
			out[k] = Placeholder
		} else {
			out[k] = Value(v)
		}
	}
	return out
}
