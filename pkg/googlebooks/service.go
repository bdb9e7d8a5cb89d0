package googlebooks

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/booklogapp/booklog/pkg/errcodes"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// httpClient is shared across lookups. Google Books is usually quick; anything
// slower than this is treated as a failure.
var httpClient = &http.Client{Timeout: 10 * time.Second}

// Volume is the normalized metadata returned to the frontend for a single
// matched book.
type Volume struct {
	Title       string   `json:"title"`
	Authors     []string `json:"authors"`
	Description string   `json:"description"`
	CoverImage  string   `json:"coverImage"`
}

type searchResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo struct {
			Title       string   `json:"title"`
			Authors     []string `json:"authors"`
			Description string   `json:"description"`
			ImageLinks  struct {
				SmallThumbnail string `json:"smallThumbnail"`
				Thumbnail      string `json:"thumbnail"`
			} `json:"imageLinks"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

type Client struct {
	baseURL string
	apiKey  string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// SearchByTitle runs an intitle search and returns the first match. No
// retries; any upstream failure is surfaced as-is.
func (c *Client) SearchByTitle(ctx context.Context, title string) (*Volume, error) {
	query := url.Values{}
	query.Set("q", "intitle:"+title)
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/volumes?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("google books returned status %d", resp.StatusCode)
	}

	sr := searchResponse{}
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, errors.WithStack(err)
	}

	if len(sr.Items) == 0 {
		return nil, errcodes.NotFound("Book")
	}

	info := sr.Items[0].VolumeInfo
	volume := &Volume{
		Title:       info.Title,
		Authors:     info.Authors,
		Description: info.Description,
	}
	if volume.Title == "" {
		volume.Title = "Unknown Title"
	}
	if volume.Authors == nil {
		volume.Authors = []string{}
	}
	if info.ImageLinks.Thumbnail != "" {
		volume.CoverImage = info.ImageLinks.Thumbnail
	} else {
		volume.CoverImage = info.ImageLinks.SmallThumbnail
	}

	return volume, nil
}
