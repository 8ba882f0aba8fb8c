package contract_test

import (
	"fmt"

	"github.com/jmgilman/go/testkit/contract"
)

// BuildError follows the canonical constructor shape.
type BuildError struct {
	message string
	cause   error
}

func NewBuildError() *BuildError {
	return &BuildError{}
}

func NewBuildErrorWithMessage(message string) *BuildError {
	return &BuildError{message: message}
}

func NewBuildErrorWithCause(cause error) *BuildError {
	return &BuildError{message: cause.Error(), cause: cause}
}

func NewBuildErrorWithMessageAndCause(message string, cause error) *BuildError {
	return &BuildError{message: message, cause: cause}
}

func (e *BuildError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("build failed: %s: %v", e.message, e.cause)
	}
	return "build failed: " + e.message
}

func (e *BuildError) Message() string {
	return e.message
}

func (e *BuildError) Unwrap() error {
	return e.cause
}

// PublishError is a value type without a Message method; its Error output is
// the message.
type PublishError struct {
	msg   string
	cause error
}

func NewPublishError() PublishError {
	return PublishError{}
}

func NewPublishErrorWithMessage(m string) PublishError {
	return PublishError{msg: m}
}

func NewPublishErrorWithCause(c error) PublishError {
	return PublishError{msg: c.Error(), cause: c}
}

func NewPublishErrorWithMessageAndCause(m string, c error) PublishError {
	return PublishError{msg: m, cause: c}
}

func (e PublishError) Error() string { return e.msg }
func (e PublishError) Unwrap() error { return e.cause }

// DerivedError embeds BuildError and declares only a no-args constructor.
type DerivedError struct {
	*BuildError
}

func NewDerivedError() *DerivedError {
	return &DerivedError{BuildError: NewBuildError()}
}

func buildConstructors() contract.Constructors {
	return contract.Constructors{
		New:                    NewBuildError,
		NewWithMessage:         NewBuildErrorWithMessage,
		NewWithCause:           NewBuildErrorWithCause,
		NewWithMessageAndCause: NewBuildErrorWithMessageAndCause,
	}
}

// recordingT captures failures reported through testify.
type recordingT struct {
	failures []string
}

func (r *recordingT) Errorf(format string, args ...interface{}) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}
