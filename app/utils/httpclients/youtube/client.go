package youtube

import (
	"context"
	"fmt"
	"strconv"

	"github.com/murayeeto/HornetHelper/app/utils/httpclients"
	"resty.dev/v3"
)

const searchEndpoint = "https://www.googleapis.com/youtube/v3/search"

type Client struct {
	client *resty.Client
	apiKey string
}

func NewClient(apiKey string) *Client {
	return &Client{
		client: httpclients.NewClient("YouTubeClient"),
		apiKey: apiKey,
	}
}

type SafeSearch string

const (
	SafeSearchNone     SafeSearch = "none"
	SafeSearchModerate SafeSearch = "moderate"
	SafeSearchStrict   SafeSearch = "strict"
)

type SearchRequest struct {
	Query             string
	MaxResults        int
	VideoEmbeddable   bool
	RelevanceLanguage string
	SafeSearch        SafeSearch
}

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Snippet struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnails  struct {
		Default *Thumbnail `json:"default,omitempty"`
		Medium  *Thumbnail `json:"medium,omitempty"`
		High    *Thumbnail `json:"high,omitempty"`
	} `json:"thumbnails"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
}

type SearchItem struct {
	ID struct {
		Kind    string `json:"kind"`
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet Snippet `json:"snippet"`
}

type SearchResponse struct {
	Items    []SearchItem `json:"items"`
	PageInfo struct {
		TotalResults   int `json:"totalResults"`
		ResultsPerPage int `json:"resultsPerPage"`
	} `json:"pageInfo"`
}

// Search queries the YouTube Data API v3 search endpoint. Only video results
// are requested; playlists and channels are excluded.
func (c *Client) Search(ctx context.Context, query SearchRequest) (*SearchResponse, error) {
	params := map[string]string{
		"part": "snippet",
		"q":    query.Query,
		"type": "video",
		"key":  c.apiKey,
	}
	if query.MaxResults > 0 {
		params["maxResults"] = strconv.Itoa(query.MaxResults)
	}
	if query.VideoEmbeddable {
		params["videoEmbeddable"] = "true"
	}
	if query.RelevanceLanguage != "" {
		params["relevanceLanguage"] = query.RelevanceLanguage
	}
	if query.SafeSearch != "" {
		params["safeSearch"] = string(query.SafeSearch)
	}

	var result SearchResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&result).
		Get(searchEndpoint)

	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		return nil, fmt.Errorf("youtube API error: %s", resp.Status())
	}

	return &result, nil
}
