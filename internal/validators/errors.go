package validators

import (
	"errors"

	"github.com/MKhiriev/go-enquete/internal/app"
)

// ErrInvalidField is reported by every field rule when the value it checks
// is unacceptable. Its text is shown to the user next to the field, so it is
// the only information a rule failure carries.
var ErrInvalidField = errors.New(app.MsgInvalidField)

// ErrRequiredField is reported for an empty or absent value. It is an
// [ErrInvalidField] with its own text, so errors.Is(err, ErrInvalidField)
// holds for every rule failure.
var ErrRequiredField error = requiredFieldError{}

type requiredFieldError struct{}

func (requiredFieldError) Error() string { return app.MsgRequiredField }

func (requiredFieldError) Is(target error) bool { return target == ErrInvalidField }
