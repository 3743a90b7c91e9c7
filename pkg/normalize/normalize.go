package normalize

import (
	"encoding/json"
	"strings"
)

// StringList coerces a serialized list column into a canonical ordered
// slice. Upstream rows carry three historical encodings for the same
// logical field: a JSON array string, a comma-separated string, or a
// single bare value. All readers go through here so nothing downstream
// re-parses the ambiguity.
func StringList(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return []string{}
	}

	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			return clean(arr)
		}
		// malformed JSON falls through and is treated as plain text
	}

	return clean(strings.Split(s, ","))
}

// EncodeStringList renders the canonical storage form (a JSON array) so
// new writes stop adding to the encoding zoo.
func EncodeStringList(values []string) string {
	vs := clean(values)
	b, err := json.Marshal(vs)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func clean(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
