package captions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"sublingo_go_backend/internal/models"
)

// Terminal conditions for a given video. Anything else coming out of the
// adapter is a transient upstream failure.
var (
	ErrNoCaptions       = errors.New("video has no caption track")
	ErrVideoUnavailable = errors.New("video is unavailable")
)

const (
	defaultPlayerURL = "https://www.youtube.com/youtubei/v1/player"
	// The ANDROID client surfaces auto-generated tracks that the web
	// endpoint omits, so caption discovery must go through it.
	innertubeClientName    = "ANDROID"
	innertubeClientVersion = "19.09.37"
)

// Metadata is the result of probing a video: descriptive fields plus the
// resolved caption track URL. Probing never downloads the transcript, so
// cost can be estimated and credit checked before committing to a fetch.
type Metadata struct {
	VideoID         string
	Title           string
	DurationSeconds int
	ThumbnailURL    string
	Language        string
	TrackURL        string
}

// Client fetches caption tracks through YouTube's internal player API.
type Client struct {
	httpClient *http.Client
	playerURL  string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		playerURL:  defaultPlayerURL,
	}
}

// NewClientWithEndpoint exists for tests that stub the upstream platform.
func NewClientWithEndpoint(httpClient *http.Client, playerURL string) *Client {
	return &Client{httpClient: httpClient, playerURL: playerURL}
}

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	VideoDetails struct {
		VideoID       string `json:"videoId"`
		Title         string `json:"title"`
		LengthSeconds string `json:"lengthSeconds"`
		Thumbnail     struct {
			Thumbnails []struct {
				URL string `json:"url"`
			} `json:"thumbnails"`
		} `json:"thumbnail"`
	} `json:"videoDetails"`
	Captions struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" for auto-generated
}

// Probe resolves video metadata and picks a caption track without
// downloading it. Returns ErrVideoUnavailable for private/removed/blocked
// videos and ErrNoCaptions when no usable track exists.
func (c *Client) Probe(ctx context.Context, videoID string) (*Metadata, error) {
	body := map[string]interface{}{
		"videoId": videoID,
		"context": map[string]interface{}{
			"client": map[string]interface{}{
				"clientName":    innertubeClientName,
				"clientVersion": innertubeClientVersion,
			},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.playerURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("player request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("player request failed with status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read player response: %w", err)
	}

	var pr playerResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return nil, fmt.Errorf("parse player response: %w", err)
	}

	switch pr.PlayabilityStatus.Status {
	case "OK":
	case "":
		return nil, fmt.Errorf("player response missing playability status")
	default:
		log.Printf("[captions] video %s not playable: %s (%s)",
			videoID, pr.PlayabilityStatus.Status, pr.PlayabilityStatus.Reason)
		return nil, ErrVideoUnavailable
	}

	track, ok := pickTrack(pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks)
	if !ok {
		return nil, ErrNoCaptions
	}

	duration := 0
	fmt.Sscanf(pr.VideoDetails.LengthSeconds, "%d", &duration)

	thumbnail := ""
	if thumbs := pr.VideoDetails.Thumbnail.Thumbnails; len(thumbs) > 0 {
		thumbnail = thumbs[len(thumbs)-1].URL
	}

	lang := track.LanguageCode
	if lang == "" {
		lang = "auto"
	}

	return &Metadata{
		VideoID:         videoID,
		Title:           pr.VideoDetails.Title,
		DurationSeconds: duration,
		ThumbnailURL:    thumbnail,
		Language:        lang,
		TrackURL:        track.BaseURL,
	}, nil
}

// pickTrack falls back through auto-generated, then manual, then any
// available language.
func pickTrack(tracks []captionTrack) (captionTrack, bool) {
	for _, t := range tracks {
		if t.Kind == "asr" && t.BaseURL != "" {
			return t, true
		}
	}
	for _, t := range tracks {
		if t.Kind != "asr" && t.BaseURL != "" {
			return t, true
		}
	}
	for _, t := range tracks {
		if t.BaseURL != "" {
			return t, true
		}
	}
	return captionTrack{}, false
}

type timedTextResponse struct {
	Events []struct {
		StartMs    int `json:"tStartMs"`
		DurationMs int `json:"dDurationMs"`
		Segs       []struct {
			UTF8 string `json:"utf8"`
		} `json:"segs"`
	} `json:"events"`
}

const fallbackCueDurationMs = 1000

// FetchTrack downloads the caption track resolved by Probe and normalizes
// it into ordered cues. Empty-text platform artifacts are filtered out, so
// the returned sequence is non-empty with dense 1-based indices.
func (c *Client) FetchTrack(ctx context.Context, meta *Metadata) ([]models.Cue, error) {
	url := meta.TrackURL
	if !strings.Contains(url, "fmt=") {
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		url += sep + "fmt=json3"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("timedtext request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("timedtext request failed with status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read timedtext response: %w", err)
	}

	var tt timedTextResponse
	if err := json.Unmarshal(raw, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext response: %w", err)
	}

	var cues []models.Cue
	index := 0
	for _, ev := range tt.Events {
		var sb strings.Builder
		for _, seg := range ev.Segs {
			sb.WriteString(seg.UTF8)
		}
		text := strings.TrimSpace(strings.ReplaceAll(sb.String(), "\n", " "))
		if text == "" {
			continue
		}
		dur := ev.DurationMs
		if dur <= 0 {
			dur = fallbackCueDurationMs
		}
		index++
		cues = append(cues, models.Cue{
			Index: index,
			Start: FormatTimecode(ev.StartMs),
			End:   FormatTimecode(ev.StartMs + dur),
			Text:  text,
		})
	}

	if len(cues) == 0 {
		return nil, ErrNoCaptions
	}

	log.Printf("[captions] fetched %d cues for video %s (lang=%s)", len(cues), meta.VideoID, meta.Language)
	return cues, nil
}
