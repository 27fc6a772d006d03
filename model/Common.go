package model

import "fmt"

type JSON map[string]interface{}

// ErrorKey marks a source that was configured but unreadable or malformed.
// The marker travels through the normal data paths instead of being raised,
// so consumers check for it before treating a source's output as data.
const ErrorKey = "_error"

func Errorf(format string, args ...interface{}) JSON {
	return JSON{ErrorKey: fmt.Sprintf(format, args...)}
}

func IsError(j JSON) bool {
	_, found := j[ErrorKey]
	return found
}

// ErrorText returns the marker message, or "" when j is not a marker.
func ErrorText(j JSON) string {
	if text, isString := j[ErrorKey].(string); isString {
		return text
	}
	return ""
}
