package response

import (
	"errors"
	"hotel/shared/failure"
	"hotel/shared/logger"
	"hotel/transport/console/session"
	"io"
)

const msgInternalError = "Something went wrong, please try again"

// WithMessage prints a line to the session.
func WithMessage(s *session.Session, format string, args ...any) {
	s.Printf(format+"\n", args...)
}

// WithError prints the failure message. Any other error is logged with its
// stack and reported generically. Exhausted input prints nothing.
func WithError(s *session.Session, err error) {
	if err == nil || errors.Is(err, io.EOF) {
		return
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		s.Println(fail.Message)

		return
	}

	logger.ErrorWithStack(err)
	s.Println(msgInternalError)
}
