package utils

import (
	"net/url"
	"strings"
)

// ParseListParam aceita tanto "types=a,b" quanto "types[]=a&types[]=b".
func ParseListParam(values url.Values, name string) []string {
	raw := values[name+"[]"]
	if len(raw) == 0 {
		raw = values[name]
	}

	var out []string
	for _, chunk := range raw {
		for _, item := range strings.Split(chunk, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
