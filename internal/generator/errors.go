package generator

import "fmt"

// ValidationError reports options that fail pre-flight validation. It is
// always raised before any filesystem mutation.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// DestinationConflictError reports that the target plugin directory already
// exists and is not empty. Like validation, it is raised before any write.
type DestinationConflictError struct {
	Path string
}

func (e *DestinationConflictError) Error() string {
	return fmt.Sprintf("destination %s already exists and is not empty", e.Path)
}
