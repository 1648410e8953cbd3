package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mediaMatcher/domain"
)

const maxOverviewLength = 500

// Client wraps the Google Books volumes API and adapts it to the catalog
// capability. Books have no discover endpoint; the candidate collector
// issues one per-subject Search per top category instead.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type volumesPage struct {
	Items []volumeItem `json:"items"`
}

type volumeItem struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title         string      `json:"title"`
	Subtitle      string      `json:"subtitle"`
	Authors       []string    `json:"authors"`
	Publisher     string      `json:"publisher"`
	PublishedDate string      `json:"publishedDate"`
	Description   string      `json:"description"`
	Categories    []string    `json:"categories"`
	AverageRating float64     `json:"averageRating"`
	RatingsCount  int         `json:"ratingsCount"`
	PageCount     int         `json:"pageCount"`
	Language      string      `json:"language"`
	ImageLinks    *imageLinks `json:"imageLinks"`
}

type imageLinks struct {
	Thumbnail string `json:"thumbnail"`
}

func (c *Client) Search(ctx context.Context, query string, limit int) ([]domain.Candidate, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(limit))
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/volumes?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build google books request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google books request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google books returned status %d", resp.StatusCode)
	}

	var page volumesPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode google books response: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(page.Items))
	for _, item := range page.Items {
		candidates = append(candidates, item.toCandidate())
	}

	return candidates, nil
}

// DiscoverByTags is not part of the Google Books API surface.
func (c *Client) DiscoverByTags(ctx context.Context, tags []string, minVoteCount int) ([]domain.Candidate, error) {
	return nil, errors.New("google books does not support discover queries")
}

func (item volumeItem) toCandidate() domain.Candidate {
	info := item.VolumeInfo

	title := info.Title
	if title == "" {
		title = "Unknown Title"
	}

	authors := info.Authors
	if len(authors) == 0 {
		authors = []string{"Unknown Author"}
	}

	overview := info.Description
	if len(overview) > maxOverviewLength {
		overview = overview[:maxOverviewLength]
	}

	language := info.Language
	if language == "" {
		language = "en"
	}

	poster := ""
	if info.ImageLinks != nil {
		poster = strings.Replace(info.ImageLinks.Thumbnail, "http:", "https:", 1)
	}

	return domain.Candidate{
		ID:          item.ID,
		Title:       title,
		Subtitle:    info.Subtitle,
		Overview:    overview,
		ReleaseDate: info.PublishedDate,
		Tags:        info.Categories,
		Rating:      info.AverageRating,
		VoteCount:   info.RatingsCount,
		PageCount:   info.PageCount,
		Language:    language,
		Authors:     authors,
		Publisher:   info.Publisher,
		PosterPath:  poster,
	}
}
