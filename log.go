package qparams

import "net/url"

const LogMaskVal = "xxxxxx"

// MaskedQueryParams are the query param names whose values never appear in logs.
var MaskedQueryParams = []string{"password", "token"}

// Mask replaces the values for key in vals with a single [LogMaskVal].
// If key is not set, vals is left untouched.
func Mask(vals url.Values, key string) {
	if _, ok := vals[key]; !ok {
		return
	}

	vals[key] = []string{LogMaskVal}
}

// MaskAll calls [Mask] on vals for each of [MaskedQueryParams].
func MaskAll(vals url.Values) {
	for _, key := range MaskedQueryParams {
		Mask(vals, key)
	}
}
