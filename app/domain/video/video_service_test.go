package video

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/murayeeto/HornetHelper/app/utils/httpclients/youtube"
)

type stubSearchClient struct {
	lastQuery youtube.SearchRequest
	response  *youtube.SearchResponse
	err       error
	calls     int
}

func (s *stubSearchClient) Search(ctx context.Context, query youtube.SearchRequest) (*youtube.SearchResponse, error) {
	s.calls++
	s.lastQuery = query
	if s.err != nil {
		return nil, s.err
	}
	return s.response, nil
}

func searchItem(videoID, title, description string, withThumbnails bool) youtube.SearchItem {
	var item youtube.SearchItem
	item.ID.VideoID = videoID
	item.Snippet.Title = title
	item.Snippet.Description = description
	if withThumbnails {
		item.Snippet.Thumbnails.Default = &youtube.Thumbnail{URL: "https://img.example/default.jpg"}
		item.Snippet.Thumbnails.Medium = &youtube.Thumbnail{URL: "https://img.example/medium.jpg"}
		item.Snippet.Thumbnails.High = &youtube.Thumbnail{URL: "https://img.example/high.jpg"}
	}
	return item
}

func TestTruncateDescription(t *testing.T) {
	long := strings.Repeat("a", 150)
	truncated := truncateDescription(long)
	if len(truncated) != 103 {
		t.Fatalf("expected 103 characters, got %d", len(truncated))
	}
	if !strings.HasSuffix(truncated, ellipsisMarker) {
		t.Fatalf("expected ellipsis marker suffix, got %q", truncated[90:])
	}

	short := strings.Repeat("b", 80)
	if got := truncateDescription(short); got != short {
		t.Fatalf("short description must be unchanged, got %q", got)
	}

	// idempotence: a second pass must not grow the string again
	if again := truncateDescription(truncated); again != truncated {
		t.Fatalf("truncation is not idempotent: %d -> %d", len(truncated), len(again))
	}
}

func TestTruncateDescriptionCountsRunes(t *testing.T) {
	// 60 characters but 120 bytes; must be returned unchanged
	short := strings.Repeat("é", 60)
	if got := truncateDescription(short); got != short {
		t.Fatalf("60-character description was altered: %q", got)
	}

	long := strings.Repeat("é", 120)
	truncated := truncateDescription(long)
	if !utf8.ValidString(truncated) {
		t.Fatalf("truncation produced invalid UTF-8: %q", truncated)
	}
	if got := utf8.RuneCountInString(truncated); got != 103 {
		t.Fatalf("expected 103 characters, got %d", got)
	}
	if !strings.HasSuffix(truncated, ellipsisMarker) {
		t.Fatalf("expected ellipsis marker suffix, got %q", truncated)
	}
	if !strings.HasPrefix(truncated, strings.Repeat("é", 100)) {
		t.Fatalf("expected the first 100 characters intact, got %q", truncated)
	}
}

func TestRecommendShapesResults(t *testing.T) {
	client := &stubSearchClient{response: &youtube.SearchResponse{
		Items: []youtube.SearchItem{
			searchItem("abc123", "Intro to Algorithms", strings.Repeat("d", 150), true),
			searchItem("def456", "Data Structures", "short description", false),
		},
	}}
	service := &VideoService{client: client, apiKey: "test-key"}

	results := service.Recommend(context.Background(), "Computer Science")
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].URL != "https://www.youtube.com/watch?v=abc123" {
		t.Fatalf("unexpected watch URL: %s", results[0].URL)
	}
	if results[0].Thumbnail != "https://img.example/high.jpg" {
		t.Fatalf("expected highest-resolution thumbnail, got %s", results[0].Thumbnail)
	}
	if len(results[0].Description) != 103 {
		t.Fatalf("expected truncated description, got length %d", len(results[0].Description))
	}
	if results[1].Thumbnail != "" {
		t.Fatalf("expected empty thumbnail when none present, got %s", results[1].Thumbnail)
	}
	if results[1].Description != "short description" {
		t.Fatalf("short description altered: %q", results[1].Description)
	}

	if !strings.HasPrefix(client.lastQuery.Query, "Computer Science ") {
		t.Fatalf("subject missing from query: %q", client.lastQuery.Query)
	}
	if !strings.HasSuffix(client.lastQuery.Query, "course lecture tutorial concepts") {
		t.Fatalf("educational suffix missing from query: %q", client.lastQuery.Query)
	}
	if client.lastQuery.MaxResults != maxResults {
		t.Fatalf("unexpected result cap: %d", client.lastQuery.MaxResults)
	}
	if !client.lastQuery.VideoEmbeddable {
		t.Fatal("embeddable constraint not set")
	}
	if client.lastQuery.SafeSearch != youtube.SafeSearchStrict {
		t.Fatalf("unexpected safe search mode: %s", client.lastQuery.SafeSearch)
	}
	if client.lastQuery.RelevanceLanguage != "en" {
		t.Fatalf("unexpected relevance language: %s", client.lastQuery.RelevanceLanguage)
	}
}

func TestRecommendEmptyAndFaultCollapseToNil(t *testing.T) {
	empty := &stubSearchClient{response: &youtube.SearchResponse{}}
	service := &VideoService{client: empty, apiKey: "test-key"}
	if results := service.Recommend(context.Background(), "Computer Science"); results != nil {
		t.Fatalf("expected nil for empty result set, got %v", results)
	}

	failing := &stubSearchClient{err: errors.New("quota exceeded")}
	service = &VideoService{client: failing, apiKey: "test-key"}
	if results := service.Recommend(context.Background(), "Computer Science"); results != nil {
		t.Fatalf("expected nil for provider fault, got %v", results)
	}
}

func TestRecommendMissingCredentialShortCircuits(t *testing.T) {
	client := &stubSearchClient{response: &youtube.SearchResponse{
		Items: []youtube.SearchItem{searchItem("abc123", "Never used", "", false)},
	}}
	service := &VideoService{client: client}

	if results := service.Recommend(context.Background(), "Biology"); results != nil {
		t.Fatalf("expected nil without a credential, got %v", results)
	}
	if client.calls != 0 {
		t.Fatalf("provider must not be called without a credential, got %d calls", client.calls)
	}
}
