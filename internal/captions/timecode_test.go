package captions_test

import (
	"testing"

	"sublingo_go_backend/internal/captions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimecode(t *testing.T) {
	assert.Equal(t, "00:00:00,000", captions.FormatTimecode(0))
	assert.Equal(t, "00:00:02,000", captions.FormatTimecode(2000))
	assert.Equal(t, "00:01:05,250", captions.FormatTimecode(65250))
	assert.Equal(t, "01:02:03,004", captions.FormatTimecode(3723004))
	assert.Equal(t, "00:00:00,000", captions.FormatTimecode(-5))
}

func TestParseTimecodeRoundTrip(t *testing.T) {
	for _, ms := range []int{0, 999, 1000, 65250, 3723004, 35999999} {
		parsed, err := captions.ParseTimecode(captions.FormatTimecode(ms))
		require.NoError(t, err)
		assert.Equal(t, ms, parsed)
	}
}

func TestParseTimecodeRejectsMalformedStamps(t *testing.T) {
	for _, tc := range []string{"", "0:00:00,000", "00:00:00.000", "00:00:00", "garbage"} {
		_, err := captions.ParseTimecode(tc)
		assert.Error(t, err, tc)
	}
}

func TestExtractVideoID(t *testing.T) {
	cases := map[string]string{
		"dQw4w9WgXcQ": "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":            "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?list=PL123&v=dQw4w9WgXcQ": "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?t=42":                      "dQw4w9WgXcQ",
		"https://www.youtube.com/shorts/dQw4w9WgXcQ":             "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":              "dQw4w9WgXcQ",
		"https://www.youtube.com/live/dQw4w9WgXcQ":               "dQw4w9WgXcQ",
	}

	for input, want := range cases {
		got, err := captions.ExtractVideoID(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestExtractVideoIDRejectsUnknownShapes(t *testing.T) {
	for _, input := range []string{"", "https://vimeo.com/12345", "tooshort", "https://www.youtube.com/"} {
		_, err := captions.ExtractVideoID(input)
		assert.Error(t, err, input)
	}
}
