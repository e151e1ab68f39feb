package captions

import (
	"fmt"
	"regexp"
	"strconv"
)

var timecodeRe = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})$`)

// FormatTimecode renders milliseconds as a fixed-width "HH:MM:SS,mmm" stamp.
func FormatTimecode(ms int) string {
	if ms < 0 {
		ms = 0
	}
	h := ms / 3600000
	ms %= 3600000
	m := ms / 60000
	ms %= 60000
	s := ms / 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms%1000)
}

// ParseTimecode parses a "HH:MM:SS,mmm" stamp back into milliseconds.
func ParseTimecode(tc string) (int, error) {
	matches := timecodeRe.FindStringSubmatch(tc)
	if matches == nil {
		return 0, fmt.Errorf("invalid timecode %q", tc)
	}
	h, _ := strconv.Atoi(matches[1])
	m, _ := strconv.Atoi(matches[2])
	s, _ := strconv.Atoi(matches[3])
	ms, _ := strconv.Atoi(matches[4])
	return h*3600000 + m*60000 + s*1000 + ms, nil
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?(?:.*&)?v=)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtu\.be/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/shorts/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/embed/)([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com/live/)([A-Za-z0-9_-]{11})`),
}

var bareVideoIDRe = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// ExtractVideoID resolves a raw user-supplied value (bare id or any known
// YouTube URL shape) to the platform-native 11-character video id.
func ExtractVideoID(raw string) (string, error) {
	if bareVideoIDRe.MatchString(raw) {
		return raw, nil
	}
	for _, re := range videoIDPatterns {
		if matches := re.FindStringSubmatch(raw); matches != nil {
			return matches[1], nil
		}
	}
	return "", fmt.Errorf("could not extract a video id from %q", raw)
}
