package reservation

import (
	"regexp"
	"strconv"
)

var (
	phoneRe = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe  = regexp.MustCompile(`^\d{2}:\d{2}$`)
	idRe    = regexp.MustCompile(`^ID \d+A$`)
)

// ValidPhone reports whether phone matches XXX-XXX-XXXX.
func ValidPhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// ValidDate reports whether date is a well-formed YYYY-MM-DD string on or
// after the reference date. Month must be 1-12 and day 1-31; there is no
// per-month day count or leap-year check. Because the format is zero-padded,
// lexicographic comparison against the reference date is chronological.
func ValidDate(date string, clock Clock) bool {
	if !dateRe.MatchString(date) {
		return false
	}
	month, _ := strconv.Atoi(date[5:7])
	day, _ := strconv.Atoi(date[8:10])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	return date >= clock.Today
}

// ValidTime reports whether t is a well-formed HH:MM 24-hour string. When
// date equals the reference date, t must be strictly later than the
// reference time.
func ValidTime(t, date string, clock Clock) bool {
	if !timeRe.MatchString(t) {
		return false
	}
	hour, _ := strconv.Atoi(t[0:2])
	minute, _ := strconv.Atoi(t[3:5])
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return false
	}
	if date == clock.Today {
		if hour < clock.Hour || (hour == clock.Hour && minute <= clock.Minute) {
			return false
		}
	}
	return true
}

// ValidPartySize reports whether size is at least one.
func ValidPartySize(size int) bool {
	return size >= 1
}

// ValidReservationID reports whether id matches the "ID <digits>A" form.
func ValidReservationID(id string) bool {
	return idRe.MatchString(id)
}

// ParseMenuChoice parses a strictly numeric menu input into an integer within
// [min, max]. Signs, spaces, decimals and trailing characters are rejected.
func ParseMenuChoice(input string, min, max int) (int, bool) {
	if input == "" {
		return 0, false
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, false
	}
	if n < min || n > max {
		return 0, false
	}
	return n, true
}
