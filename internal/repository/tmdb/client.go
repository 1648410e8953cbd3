package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mediaMatcher/domain"
)

const posterBaseURL = "https://image.tmdb.org/t/p/w500"

// Client wraps the TMDB REST API. The embedded http.Client carries the
// bounded timeout; callers treat any returned error as zero candidates.
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

// payload shapes shared by the movie and TV endpoints

type resultPage struct {
	Results []resultItem `json:"results"`
}

type resultItem struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	Name             string   `json:"name"`
	Overview         string   `json:"overview"`
	ReleaseDate      string   `json:"release_date"`
	FirstAirDate     string   `json:"first_air_date"`
	GenreIDs         []int    `json:"genre_ids"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
	Popularity       float64  `json:"popularity"`
	OriginalLanguage string   `json:"original_language"`
	OriginCountry    []string `json:"origin_country"`
	PosterPath       string   `json:"poster_path"`
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*resultPage, error) {
	params.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build tmdb request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tmdb request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tmdb returned status %d", resp.StatusCode)
	}

	var page resultPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("failed to decode tmdb response: %w", err)
	}

	return &page, nil
}

func (item resultItem) toCandidate(tv bool) domain.Candidate {
	title := item.Title
	date := item.ReleaseDate
	if tv {
		title = item.Name
		date = item.FirstAirDate
	}

	tags := make([]string, 0, len(item.GenreIDs))
	for _, id := range item.GenreIDs {
		tags = append(tags, strconv.Itoa(id))
	}

	poster := ""
	if item.PosterPath != "" {
		poster = posterBaseURL + item.PosterPath
	}

	return domain.Candidate{
		ID:            strconv.Itoa(item.ID),
		Title:         title,
		Overview:      item.Overview,
		ReleaseDate:   date,
		Tags:          tags,
		Rating:        item.VoteAverage,
		VoteCount:     item.VoteCount,
		Popularity:    item.Popularity,
		Language:      item.OriginalLanguage,
		OriginCountry: item.OriginCountry,
		PosterPath:    poster,
	}
}

func (c *Client) search(ctx context.Context, path, query string, limit int, tv bool) ([]domain.Candidate, error) {
	params := url.Values{}
	params.Set("query", query)

	page, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, 0, limit)
	for _, item := range page.Results {
		if len(candidates) >= limit {
			break
		}
		candidates = append(candidates, item.toCandidate(tv))
	}

	return candidates, nil
}

func (c *Client) discover(ctx context.Context, path string, tags []string, minVoteCount int, tv bool) ([]domain.Candidate, error) {
	params := url.Values{}
	params.Set("with_genres", strings.Join(tags, ","))
	params.Set("sort_by", "vote_average.desc")
	params.Set("vote_count.gte", strconv.Itoa(minVoteCount))
	params.Set("page", "1")

	page, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}

	candidates := make([]domain.Candidate, 0, len(page.Results))
	for _, item := range page.Results {
		candidates = append(candidates, item.toCandidate(tv))
	}

	return candidates, nil
}
