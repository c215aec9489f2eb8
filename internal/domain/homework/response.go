package homework

import (
	"encoding/json"
	"math"

	"github.com/pkg/errors"
)

const (
	keyHomeworks   = "homeworks"
	keyCurrentDate = "current_date"
)

// CheckResponse validates the decoded API body and converts it into a
// StatusResponse. Only types are checked; values are copied as is.
func CheckResponse(raw any) (StatusResponse, error) {
	body, ok := raw.(map[string]any)
	if !ok {
		return StatusResponse{}, errors.Wrapf(ErrSchema, "response is %T, not an object", raw)
	}

	rawHomeworks, ok := body[keyHomeworks]
	if !ok {
		return StatusResponse{}, errors.Wrapf(ErrSchema, "key '%s' is missing", keyHomeworks)
	}
	rawDate, ok := body[keyCurrentDate]
	if !ok {
		return StatusResponse{}, errors.Wrapf(ErrSchema, "key '%s' is missing", keyCurrentDate)
	}

	list, ok := rawHomeworks.([]any)
	if !ok {
		return StatusResponse{}, errors.Wrapf(ErrSchema, "key '%s' is %T, not a list", keyHomeworks, rawHomeworks)
	}

	currentDate, ok := toUnix(rawDate)
	if !ok {
		return StatusResponse{}, errors.Wrapf(ErrSchema, "key '%s' is not an integer timestamp", keyCurrentDate)
	}

	homeworks := make([]Homework, 0, len(list))
	for i, item := range list {
		fields, ok := item.(map[string]any)
		if !ok {
			return StatusResponse{}, errors.Wrapf(ErrSchema, "homework #%d is %T, not an object", i, item)
		}
		homeworks = append(homeworks, Homework{
			Name:       stringField(fields, "homework_name"),
			LessonName: stringField(fields, "lesson_name"),
			Status:     Status(stringField(fields, "status")),
		})
	}

	return StatusResponse{Homeworks: homeworks, CurrentDate: currentDate}, nil
}

func stringField(fields map[string]any, key string) string {
	s, _ := fields[key].(string)
	return s
}

func toUnix(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}
