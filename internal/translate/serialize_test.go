package translate_test

import (
	"strings"
	"testing"

	"sublingo_go_backend/internal/models"
	"sublingo_go_backend/internal/translate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCues() []models.Cue {
	return []models.Cue{
		{Index: 1, Start: "00:00:00,000", End: "00:00:02,000", Text: "Hello"},
		{Index: 2, Start: "00:00:02,000", End: "00:00:04,000", Text: "world"},
		{Index: 3, Start: "00:00:04,000", End: "00:00:06,000", Text: "today"},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cues := sampleCues()
	decoded := translate.DecodeReply(translate.EncodeCues(cues))
	assert.Equal(t, cues, decoded)
}

func TestDecodeReplyKeepsPipesInText(t *testing.T) {
	reply := "1|00:00:00,000|00:00:02,000|A | B | C\n"
	decoded := translate.DecodeReply(reply)
	require.Len(t, decoded, 1)
	assert.Equal(t, "A | B | C", decoded[0].Text)
}

func TestDecodeReplyDropsMalformedLines(t *testing.T) {
	reply := strings.Join([]string{
		"1|00:00:00,000|00:00:02,000|ok",
		"not a cue line",
		"2|00:00:02,000|missing text field",
		"x|00:00:04,000|00:00:06,000|bad index",
		"",
		"3|00:00:04,000|00:00:06,000|also ok",
	}, "\n")

	decoded := translate.DecodeReply(reply)
	require.Len(t, decoded, 2)
	assert.Equal(t, 1, decoded[0].Index)
	assert.Equal(t, 3, decoded[1].Index)
}

func TestJoinTranscript(t *testing.T) {
	assert.Equal(t, "Hello world today", translate.JoinTranscript(sampleCues()))
}

func TestBuildUserPromptContainsTranscriptAndCues(t *testing.T) {
	prompt := translate.BuildUserPrompt(sampleCues(), translate.Options{
		TargetLang: "vi",
		Style:      translate.StyleStandard,
		Topic:      "greetings",
	})

	assert.Contains(t, prompt, "Topic of this video: greetings")
	assert.Contains(t, prompt, "Hello world today")
	assert.Contains(t, prompt, "1|00:00:00,000|00:00:02,000|Hello")
	assert.Contains(t, prompt, "one line out")
}

func TestBuildUserPromptOmitsEmptyTopic(t *testing.T) {
	prompt := translate.BuildUserPrompt(sampleCues(), translate.Options{TargetLang: "vi"})
	assert.NotContains(t, prompt, "Topic of this video")
}
