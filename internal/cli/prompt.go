package cli

import (
	"fmt"
	"io"

	"github.com/example/tablekeeper/internal/domain/reservation"
)

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine reads one raw input line. io.EOF means the operator is gone and
// the session should wind down.
func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

// prompt prints a label and reads the reply verbatim.
func (s *Session) prompt(label string) (string, error) {
	s.printf("%s", label)
	return s.readLine()
}

// promptChoice re-prompts until the reply is a bare integer in [min, max].
func (s *Session) promptChoice(label string, min, max int) (int, error) {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		if n, ok := reservation.ParseMenuChoice(line, min, max); ok {
			return n, nil
		}
		s.printf("Invalid choice. Please enter a single number between %d and %d (e.g., 1, not 1a, 1.1, or 1 1).\n", min, max)
	}
}

// promptValid re-prompts until valid accepts the reply. Each rejected reply
// is echoed and logged as a failed action.
func (s *Session) promptValid(label, errMsg, failAction string, actor reservation.Actor, valid func(string) bool) (string, error) {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return "", err
		}
		if valid(line) {
			return line, nil
		}
		s.printf("Error: %s\n", errMsg)
		s.logFailure(actor, failAction, errMsg)
	}
}

// confirmYes asks a yes/no question; anything but yes/y (case-insensitive)
// is a no.
func (s *Session) confirmYes(label string) (bool, error) {
	line, err := s.prompt(label)
	if err != nil {
		return false, err
	}
	switch line {
	case "Yes", "yes", "Y", "y":
		return true, nil
	}
	return false, nil
}
