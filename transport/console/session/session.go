package session

import (
	"bufio"
	"errors"
	"fmt"
	"hotel/shared/failure"
	"hotel/shared/timezone"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	msgChoicePrompt  = "Please make your choice: "
	msgInvalidChoice = "Your input is invalid!"
)

// Session is one interactive user: the logged-in user id and the terminal it talks through.
type Session struct {
	userID int64
	in     *bufio.Reader
	out    io.Writer
	closed bool
}

func New(in io.Reader, out io.Writer) *Session {
	return &Session{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (s *Session) UserID() int64 {
	return s.userID
}

func (s *Session) LoggedIn() bool {
	return s.userID > 0
}

func (s *Session) LogIn(userID int64) {
	s.userID = userID
}

func (s *Session) LogOut() {
	s.userID = 0
}

// Closed reports whether the input has been exhausted.
func (s *Session) Closed() bool {
	return s.closed
}

func (s *Session) Writer() io.Writer {
	return s.out
}

func (s *Session) Print(args ...any) {
	_, _ = fmt.Fprint(s.out, args...)
}

func (s *Session) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) Println(args ...any) {
	_, _ = fmt.Fprintln(s.out, args...)
}

// ReadLine prompts with "\t<prompt>: " and returns the answer without its line terminator.
func (s *Session) ReadLine(prompt string) (string, error) {
	s.Printf("\t%s: ", prompt)

	return s.readLine()
}

// ReadChoice asks for a menu choice until an integer is entered.
func (s *Session) ReadChoice() (int, error) {
	for {
		s.Print(msgChoicePrompt)

		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return choice, nil
		}

		s.Println(msgInvalidChoice)
	}
}

// ReadInt asks for prompt until an integer is entered.
func (s *Session) ReadInt(prompt string) (int64, error) {
	for {
		line, err := s.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err == nil {
			return value, nil
		}

		s.Printf("\tInvalid %s input, must be an integer!\n", prompt)
	}
}

// ReadFloat asks for prompt until a finite number is entered.
func (s *Session) ReadFloat(prompt string) (float64, error) {
	for {
		line, err := s.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil && !math.IsNaN(value) && !math.IsInf(value, 0) {
			return value, nil
		}

		s.Printf("\tInvalid %s input, must be a number!\n", prompt)
	}
}

// ReadDate asks for prompt once and parses the answer as a calendar date.
func (s *Session) ReadDate(prompt string) (time.Time, error) {
	line, err := s.ReadLine(prompt)
	if err != nil {
		return time.Time{}, err
	}

	date, err := timezone.ParseDate(strings.TrimSpace(line))
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, use YYYY-MM-DD or M/D/YYYY", strings.TrimSpace(line)))
	}

	return date, nil
}

func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		if line == "" {
			s.closed = true

			return "", io.EOF
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}
