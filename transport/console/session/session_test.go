package session_test

import (
	"bytes"
	"hotel/shared/failure"
	"hotel/transport/console/session"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(input string) (*session.Session, *bytes.Buffer) {
	var out bytes.Buffer

	return session.New(strings.NewReader(input), &out), &out
}

func TestReadChoice_ReasksUntilInteger(t *testing.T) {
	s, out := newSession("abc\n\n 2 \n")

	choice, err := s.ReadChoice()

	require.NoError(t, err)
	assert.Equal(t, 2, choice)
	assert.Equal(t, 2, strings.Count(out.String(), "Your input is invalid!"))
	assert.Equal(t, 3, strings.Count(out.String(), "Please make your choice: "))
}

func TestReadChoice_EOF(t *testing.T) {
	s, _ := newSession("x\n")

	_, err := s.ReadChoice()

	assert.ErrorIs(t, err, io.EOF)
	assert.True(t, s.Closed())
}

func TestReadInt(t *testing.T) {
	s, out := newSession("five\n5\n")

	value, err := s.ReadInt("Enter Room Number")

	require.NoError(t, err)
	assert.Equal(t, int64(5), value)
	assert.Contains(t, out.String(), "\tEnter Room Number: ")
	assert.Contains(t, out.String(), "Invalid Enter Room Number input, must be an integer!")
}

func TestReadFloat(t *testing.T) {
	s, _ := newSession("12.5\n")

	value, err := s.ReadFloat("Longitude")

	require.NoError(t, err)
	assert.InDelta(t, 12.5, value, 1e-9)
}

func TestReadFloat_ReasksForNonFinite(t *testing.T) {
	s, out := newSession("NaN\n+Inf\n100\n")

	value, err := s.ReadFloat("Latitude")

	require.NoError(t, err)
	assert.InDelta(t, 100.0, value, 1e-9)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid Latitude input, must be a number!"))
}

func TestReadLine_LastLineWithoutNewline(t *testing.T) {
	s, _ := newSession("Alice\r\npw")

	name, err := s.ReadLine("Enter name")
	require.NoError(t, err)
	assert.Equal(t, "Alice", name)

	password, err := s.ReadLine("Enter password")
	require.NoError(t, err)
	assert.Equal(t, "pw", password)
	assert.False(t, s.Closed())

	_, err = s.ReadLine("Enter something")
	assert.ErrorIs(t, err, io.EOF)
	assert.True(t, s.Closed())
}

func TestReadDate(t *testing.T) {
	s, _ := newSession("2024-03-01\n3/1/2024\nyesterday\n")

	first, err := s.ReadDate("Enter Date")
	require.NoError(t, err)
	assert.Equal(t, 2024, first.Year())
	assert.Equal(t, time.March, first.Month())
	assert.Equal(t, 1, first.Day())

	second, err := s.ReadDate("Enter Date")
	require.NoError(t, err)
	assert.True(t, first.Equal(second))

	_, err = s.ReadDate("Enter Date")
	assert.Equal(t, failure.CodeBadRequest, failure.GetCode(err))
}

func TestLogInLogOut(t *testing.T) {
	s, _ := newSession("")

	assert.False(t, s.LoggedIn())

	s.LogIn(7)
	assert.True(t, s.LoggedIn())
	assert.Equal(t, int64(7), s.UserID())

	s.LogOut()
	assert.False(t, s.LoggedIn())
}
