package pipeline

import (
	"fmt"
	"strings"
)

// classifierRule maps upstream error-message markers to a catalog key. The
// table is ordered; the first matching rule wins. Matching on substrings is
// fragile by nature, which is exactly why it is confined to this one table.
type classifierRule struct {
	key     string
	markers []string
}

var classifierTable = []classifierRule{
	{key: msgInvalidKey, markers: []string{"API key not valid", "API_KEY_INVALID"}},
	{key: msgQuota, markers: []string{"quota"}},
	{key: msgBilling, markers: []string{"billing"}},
	{key: msgBadRequest, markers: []string{"400"}},
	{key: msgForbidden, markers: []string{"403"}},
	{key: msgRateLimited, markers: []string{"429"}},
	{key: msgServerError, markers: []string{"500"}},
}

// Classify rewrites a raw provider error message into a short user-facing
// explanation in the given locale. Unmatched messages are wrapped generically
// exactly once.
func Classify(locale, raw string) string {
	for _, rule := range classifierTable {
		for _, marker := range rule.markers {
			if strings.Contains(raw, marker) {
				return message(locale, rule.key)
			}
		}
	}
	return fmt.Sprintf(message(locale, msgGeneric), raw)
}
