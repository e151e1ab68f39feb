package translate

import (
	"fmt"
	"strconv"
	"strings"

	"sublingo_go_backend/internal/models"
)

// EncodeCues serializes cues as pipe-delimited lines: index|start|end|text.
func EncodeCues(cues []models.Cue) string {
	var sb strings.Builder
	for _, cue := range cues {
		sb.WriteString(fmt.Sprintf("%d|%s|%s|%s\n", cue.Index, cue.Start, cue.End, cue.Text))
	}
	return sb.String()
}

// DecodeReply parses a model reply back into cues. Each line splits on the
// first three delimiters only, so translated text containing '|' survives
// intact. Lines that do not yield at least four fields are dropped.
func DecodeReply(reply string) []models.Cue {
	var cues []models.Cue
	for _, line := range strings.Split(strings.ReplaceAll(reply, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 4)
		if len(parts) < 4 {
			continue
		}
		index, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		text := strings.TrimSpace(parts[3])
		if text == "" {
			continue
		}
		cues = append(cues, models.Cue{
			Index: index,
			Start: strings.TrimSpace(parts[1]),
			End:   strings.TrimSpace(parts[2]),
			Text:  text,
		})
	}
	return cues
}

// JoinTranscript concatenates all cue texts into one plain-text transcript.
// Giving the model the full document up front prevents mistranslation of
// cues that are sentence fragments.
func JoinTranscript(cues []models.Cue) string {
	texts := make([]string, len(cues))
	for i, cue := range cues {
		texts[i] = cue.Text
	}
	return strings.Join(texts, " ")
}

// BuildUserPrompt assembles the single whole-video prompt: optional topic
// hint, full transcript for context, formatting rules, and the serialized
// cue block.
func BuildUserPrompt(cues []models.Cue, opts Options) string {
	var sb strings.Builder

	if opts.Topic != "" {
		sb.WriteString("Topic of this video: ")
		sb.WriteString(opts.Topic)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Full transcript (context only, do not translate this block):\n")
	sb.WriteString(JoinTranscript(cues))
	sb.WriteString("\n\n")

	sb.WriteString("Rules:\n")
	sb.WriteString("- Each input line has the form index|startTime|endTime|text\n")
	sb.WriteString("- Reproduce index, startTime and endTime verbatim; translate only the text\n")
	sb.WriteString("- One line in equals one line out, in the same order\n")
	sb.WriteString("- Output only the translated lines, nothing else\n\n")

	sb.WriteString(fmt.Sprintf("Subtitle cues (%d lines):\n", len(cues)))
	sb.WriteString(EncodeCues(cues))

	return sb.String()
}
