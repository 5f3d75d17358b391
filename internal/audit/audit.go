// Package audit persists the append-only action log. Entries are flat text
// lines; emission order is the contract, formatting is presentation.
package audit

import (
	"bufio"
	"fmt"
	"os"

	"github.com/example/tablekeeper/internal/domain/reservation"
)

// FileSink appends audit records to a flat text file, one line per record.
type FileSink struct {
	path string
}

// NewFileSink returns a sink writing to path. The file is created on first
// append.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Append writes one record as a "[timestamp] [Role: name] Action details"
// line. A failure here is surfaced to the operation that triggered it; the
// audit trail is part of the product guarantee.
func (s *FileSink) Append(rec reservation.AuditRecord) error {
	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] [%s: %s] %s", rec.Timestamp, rec.ActorRole, rec.ActorName, rec.Action)
	if rec.Details != "" {
		line += " " + rec.Details
	}
	if _, err := fmt.Fprintln(f, line); err != nil {
		return fmt.Errorf("append audit log: %w", err)
	}
	return nil
}

// Lines returns every logged line in emission order. A missing file reads as
// an empty log.
func (s *FileSink) Lines() ([]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open audit log: %w", err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read audit log: %w", err)
	}
	return lines, nil
}
