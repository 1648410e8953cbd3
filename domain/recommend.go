package domain

// MediaType selects one of the three recommendation domains.
type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
	MediaTypeBook  MediaType = "book"
)

// LikedItem is one user-supplied item expressing positive preference.
// Tags hold genre IDs (as decimal strings) for movies/TV and subject
// categories for books.
type LikedItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
	Rating      float64  `json:"rating"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Language    string   `json:"language,omitempty"`
	Authors     []string `json:"authors,omitempty"`
}

// Candidate is one catalog item considered for recommendation. Optional
// fields stay zero-valued when the upstream payload omits them; the scorer
// treats those as skip-bonus conditions, never as errors.
type Candidate struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Subtitle      string   `json:"subtitle,omitempty"`
	Overview      string   `json:"overview"`
	ReleaseDate   string   `json:"release_date"`
	Tags          []string `json:"tags"`
	Rating        float64  `json:"vote_average"`
	VoteCount     int      `json:"vote_count"`
	Popularity    float64  `json:"popularity"`
	Language      string   `json:"language"`
	OriginCountry []string `json:"origin_country,omitempty"`
	Authors       []string `json:"authors,omitempty"`
	PageCount     int      `json:"page_count,omitempty"`
	Publisher     string   `json:"publisher,omitempty"`
	PosterPath    string   `json:"poster_path,omitempty"`
}

// Recommendation is the chosen candidate plus the generated justification.
type Recommendation struct {
	Candidate
	Reasoning string `json:"reasoning"`
}
