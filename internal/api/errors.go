package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Error is a decoded non-2xx backend response. The backend is not consistent
// about its error body shape across endpoints, so decoding tries each known
// shape and keeps the most specific message it finds.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) &&
		(apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}

// problemBody covers both {"message": ...} and RFC 7807 style
// {"title": ..., "detail": ...} responses, plus the field-keyed
// {"errors": {"Field": ["msg", ...]}} validation shape.
type problemBody struct {
	Message string              `json:"message"`
	Title   string              `json:"title"`
	Detail  string              `json:"detail"`
	Errors  map[string][]string `json:"errors"`
}

func decodeError(status int, body []byte) *Error {
	apiErr := &Error{Status: status}

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		apiErr.Message = http.StatusText(status)
		return apiErr
	}

	var problem problemBody
	if err := json.Unmarshal(body, &problem); err == nil {
		if len(problem.Errors) > 0 {
			apiErr.Fields = make(map[string]string, len(problem.Errors))
			for field, messages := range problem.Errors {
				apiErr.Fields[lowerCamel(field)] = strings.Join(messages, "; ")
			}
			apiErr.Message = joinFieldMessages(apiErr.Fields)
			return apiErr
		}
		if problem.Message != "" {
			apiErr.Message = problem.Message
			return apiErr
		}
		if problem.Title != "" {
			apiErr.Message = problem.Title
			if problem.Detail != "" {
				apiErr.Message = problem.Title + ": " + problem.Detail
			}
			return apiErr
		}
	}

	var plain string
	if err := json.Unmarshal(body, &plain); err == nil && plain != "" {
		apiErr.Message = plain
		return apiErr
	}

	// Not JSON at all; some endpoints answer with a bare text body.
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		apiErr.Message = trimmed
		return apiErr
	}

	apiErr.Message = http.StatusText(status)
	return apiErr
}

func joinFieldMessages(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", key, fields[key]))
	}
	return strings.Join(parts, "; ")
}

func lowerCamel(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
