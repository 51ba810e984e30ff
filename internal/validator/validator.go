package validator

import "github.com/garrettladley/gaugeview/internal/xerrors"

type Validator interface {
	// Validate validates the fields of the struct and returns a map of errors.
	// returns nil if no errors are found
	Validate() map[string]string
}

// Validate returns a validation *xerrors.Error, or nil when every validator passes.
// field maps of multiple validators are merged; later keys win.
func Validate(msg string, vs ...Validator) error {
	var fields map[string]string
	for _, v := range vs {
		for k, reason := range v.Validate() {
			if fields == nil {
				fields = make(map[string]string)
			}
			fields[k] = reason
		}
	}
	if fields == nil {
		return nil
	}
	return xerrors.Validation(fields, xerrors.WithMessage(msg))
}
