package errors

import "errors"

var (
	ErrSpecNotFound        = errors.New("spec file not found")
	ErrSpecParseFailed     = errors.New("spec parsing failed")
	ErrInterpolationFailed = errors.New("shell interpolation failed")
	ErrBuildFailed         = errors.New("argument build failed")
	ErrLaunchFailed        = errors.New("docker launch failed")
	ErrToolNotFound        = errors.New("docker binary not found")
	ErrDaemonUnreachable   = errors.New("docker daemon unreachable")
	ErrConfigInvalid       = errors.New("configuration invalid")
)

type DoaError struct {
	Type        error
	Context     string
	Cause       string
	Suggestion  string
	OriginalErr error
}

func (e *DoaError) Error() string {
	return e.OriginalErr.Error()
}

func (e *DoaError) Unwrap() error {
	return e.OriginalErr
}

func NewDoaError(errorType error, context, cause, suggestion string, originalErr error) *DoaError {
	return &DoaError{
		Type:        errorType,
		Context:     context,
		Cause:       cause,
		Suggestion:  suggestion,
		OriginalErr: originalErr,
	}
}

func NewSpecError(context, cause, suggestion string, originalErr error) *DoaError {
	return NewDoaError(ErrSpecNotFound, context, cause, suggestion, originalErr)
}

func NewParseError(context, cause, suggestion string, originalErr error) *DoaError {
	return NewDoaError(ErrSpecParseFailed, context, cause, suggestion, originalErr)
}

func NewInterpolationError(context, cause, suggestion string, originalErr error) *DoaError {
	return NewDoaError(ErrInterpolationFailed, context, cause, suggestion, originalErr)
}

func NewBuildError(context, cause, suggestion string, originalErr error) *DoaError {
	return NewDoaError(ErrBuildFailed, context, cause, suggestion, originalErr)
}

func NewLaunchError(context, cause, suggestion string, originalErr error) *DoaError {
	return NewDoaError(ErrLaunchFailed, context, cause, suggestion, originalErr)
}

func NewToolNotFoundError(context, cause, suggestion string, originalErr error) *DoaError {
	return NewDoaError(ErrToolNotFound, context, cause, suggestion, originalErr)
}

func NewDaemonError(context, cause, suggestion string, originalErr error) *DoaError {
	return NewDoaError(ErrDaemonUnreachable, context, cause, suggestion, originalErr)
}

func NewConfigError(context, cause, suggestion string, originalErr error) *DoaError {
	return NewDoaError(ErrConfigInvalid, context, cause, suggestion, originalErr)
}
