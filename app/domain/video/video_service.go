package video

import (
	"context"
	"strings"
	"time"

	"github.com/murayeeto/HornetHelper/app/utils/httpclients/youtube"
	"github.com/murayeeto/HornetHelper/app/utils/logger"
	"github.com/murayeeto/HornetHelper/config/environment_variables"
)

// querySuffix biases search relevance toward educational content.
const querySuffix = " course lecture tutorial concepts"

const (
	maxResults       = 3
	descriptionLimit = 100
	ellipsisMarker   = "..."
	requestTimeout   = 10 * time.Second
)

const watchURLPrefix = "https://www.youtube.com/watch?v="

// Result is the compact DTO returned to the frontend.
type Result struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Description string `json:"description"`
}

// SearchClient is the video search provider boundary.
type SearchClient interface {
	Search(ctx context.Context, query youtube.SearchRequest) (*youtube.SearchResponse, error)
}

type VideoService struct {
	client SearchClient
	apiKey string
}

func NewVideoService(client SearchClient) *VideoService {
	return &VideoService{
		client: client,
		apiKey: environment_variables.EnvironmentVariables.YOUTUBE_API_KEY,
	}
}

// Recommend searches for embeddable educational videos about the subject.
// A provider fault and an empty result set are both reported as nil; callers
// cannot distinguish the two from the return value alone.
func (s *VideoService) Recommend(ctx context.Context, subject string) []Result {
	if strings.TrimSpace(s.apiKey) == "" {
		logger.GetLogger().Error("YouTube API key not configured")
		return nil
	}

	callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	response, err := s.client.Search(callCtx, youtube.SearchRequest{
		Query:             subject + querySuffix,
		MaxResults:        maxResults,
		VideoEmbeddable:   true,
		RelevanceLanguage: "en",
		SafeSearch:        youtube.SafeSearchStrict,
	})
	if err != nil {
		logger.GetLogger().Errorf("video search failed for subject %q: %v", subject, err)
		return nil
	}
	if response == nil || len(response.Items) == 0 {
		return nil
	}

	results := make([]Result, 0, len(response.Items))
	for _, item := range response.Items {
		if item.ID.VideoID == "" {
			continue
		}
		results = append(results, Result{
			Title:       item.Snippet.Title,
			URL:         watchURLPrefix + item.ID.VideoID,
			Thumbnail:   bestThumbnail(item.Snippet),
			Description: truncateDescription(item.Snippet.Description),
		})
	}
	if len(results) == 0 {
		return nil
	}
	return results
}

// bestThumbnail picks the highest resolution variant present.
func bestThumbnail(snippet youtube.Snippet) string {
	thumbnails := snippet.Thumbnails
	switch {
	case thumbnails.High != nil:
		return thumbnails.High.URL
	case thumbnails.Medium != nil:
		return thumbnails.Medium.URL
	case thumbnails.Default != nil:
		return thumbnails.Default.URL
	}
	return ""
}

// truncateDescription caps the description at descriptionLimit characters,
// appending the marker only when something was cut. Counts runes, not bytes,
// so a multibyte description is never split mid-character. Idempotent.
func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= descriptionLimit {
		return description
	}
	return string(runes[:descriptionLimit]) + ellipsisMarker
}
