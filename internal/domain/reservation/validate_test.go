package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testClock = Clock{Today: "2025-05-19", Hour: 22, Minute: 19}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"555-123-4567", true},
		{"123-456-7890", true},
		{"1234567890", false},
		{"555-123-456", false},
		{"555-123-45678", false},
		{"55a-123-4567", false},
		{"", false},
		{" 555-123-4567", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidPhone(tt.phone), "ValidPhone(%q)", tt.phone)
	}
}

func TestValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"2025-05-19", true},  // reference date itself is allowed
		{"2025-05-20", true},
		{"2026-01-01", true},
		{"2025-05-18", false}, // past
		{"2025-13-01", false}, // month out of range
		{"2025-00-10", false},
		{"2025-05-32", false}, // day out of range
		{"2025-02-30", true},  // known looseness: no per-month day count
		{"2025-5-19", false},  // not zero padded
		{"19-05-2025", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidDate(tt.date, testClock), "ValidDate(%q)", tt.date)
	}
}

func TestValidTime(t *testing.T) {
	tests := []struct {
		time string
		date string
		want bool
	}{
		{"22:20", "2025-05-19", true},  // strictly after reference
		{"22:19", "2025-05-19", false}, // equal is not after
		{"21:00", "2025-05-19", false}, // before reference
		{"09:00", "2025-05-20", true},  // other days: only format/range
		{"00:00", "2025-05-20", true},
		{"23:59", "2025-05-20", true},
		{"24:00", "2025-05-20", false},
		{"12:60", "2025-05-20", false},
		{"9:00", "2025-05-20", false}, // not zero padded
		{"", "2025-05-20", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidTime(tt.time, tt.date, testClock), "ValidTime(%q, %q)", tt.time, tt.date)
	}
}

func TestValidPartySize(t *testing.T) {
	assert.True(t, ValidPartySize(1))
	assert.True(t, ValidPartySize(200))
	assert.False(t, ValidPartySize(0))
	assert.False(t, ValidPartySize(-3))
}

func TestValidReservationID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"ID 1A", true},
		{"ID 42A", true},
		{"ID A", false},
		{"ID 1", false},
		{"id 1A", false},
		{"ID 1A ", false},
		{"1A", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidReservationID(tt.id), "ValidReservationID(%q)", tt.id)
	}
}

func TestParseMenuChoice(t *testing.T) {
	tests := []struct {
		input  string
		min    int
		max    int
		want   int
		wantOK bool
	}{
		{"1", 1, 6, 1, true},
		{"6", 1, 6, 6, true},
		{"05", 1, 6, 5, true},
		{"0", 1, 6, 0, false},
		{"7", 1, 6, 0, false},
		{"1a", 1, 6, 0, false},
		{"1.1", 1, 6, 0, false},
		{"1 1", 1, 6, 0, false},
		{"-1", 1, 6, 0, false},
		{" 1", 1, 6, 0, false},
		{"", 1, 6, 0, false},
		{"99999999999999999999", 1, 6, 0, false}, // overflows
	}
	for _, tt := range tests {
		got, ok := ParseMenuChoice(tt.input, tt.min, tt.max)
		assert.Equal(t, tt.wantOK, ok, "ParseMenuChoice(%q) ok", tt.input)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "ParseMenuChoice(%q)", tt.input)
		}
	}
}
