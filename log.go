package bookstore

import (
	"net/url"
	"strings"
)

const (
	LogKindKey = "kind"
	LogMaskVal = "xxxxxx"
)

const (
	AppLogKind  = "app"
	HTTPLogKind = "http"
	CLILogKind  = "cli"
)

// maskedKeys are query or form keys whose values never reach a log line.
var maskedKeys = []string{"password", "token", "access_token"}

// Mask replaces every value stored under key in vals with a single [LogMaskVal].
// Key matching ignores case.
func Mask(vals url.Values, key string) {
	for k := range vals {
		if strings.EqualFold(k, key) {
			vals[k] = []string{LogMaskVal}
		}
	}
}

// MaskAll applies [Mask] to vals for every key known to carry secrets.
func MaskAll(vals url.Values) {
	for _, key := range maskedKeys {
		Mask(vals, key)
	}
}
