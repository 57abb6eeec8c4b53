package lemmatizer

import "strings"

func EndsWithAny(s string, values ...string) bool {
	for _, v := range values {
		if strings.HasSuffix(s, v) {
			return true
		}
	}
	return false
}
