package response_test

import (
	"bytes"
	"errors"
	"fmt"
	"hotel/shared/failure"
	"hotel/transport/console/response"
	"hotel/transport/console/session"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSession() (*session.Session, *bytes.Buffer) {
	var out bytes.Buffer

	return session.New(strings.NewReader(""), &out), &out
}

func TestWithMessage(t *testing.T) {
	s, out := newSession()

	response.WithMessage(s, "User successfully created with userID = %d", 42)

	assert.Equal(t, "User successfully created with userID = 42\n", out.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "failure", err: fmt.Errorf("book: %w", failure.RoomUnavailable), want: failure.RoomUnavailable.Message + "\n"},
		{name: "internal", err: errors.New("connection reset"), want: "Something went wrong, please try again\n"},
		{name: "eof", err: io.EOF, want: ""},
		{name: "nil", err: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, out := newSession()

			response.WithError(s, tt.err)

			assert.Equal(t, tt.want, out.String())
		})
	}
}
