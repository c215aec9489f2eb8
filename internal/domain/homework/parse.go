package homework

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ParseStatus builds the operator message for a homework:
//
//	Изменился статус проверки работы "<name>".
//	Спринт "<lesson>".
//	<verdict>
//
// The lesson line is left out when the API did not send a lesson name.
func ParseStatus(hw Homework) (string, error) {
	if hw.Name == "" {
		return "", errors.Wrap(ErrMissingField, "key 'homework_name' is missing")
	}
	verdict, ok := hw.Status.Verdict()
	if !ok {
		return "", errors.Wrapf(ErrUnknownStatus, "'%s'", hw.Status)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Изменился статус проверки работы \"%s\".\n", hw.Name)
	if hw.LessonName != "" {
		fmt.Fprintf(&b, "Спринт \"%s\".\n", hw.LessonName)
	}
	b.WriteString(verdict)
	return b.String(), nil
}
