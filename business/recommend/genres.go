package recommend

import "mediaMatcher/domain"

// TMDB genre ID -> display name. Fixed vocabularies; never mutated at
// runtime. Book categories arrive as names already and need no lookup.

var movieGenreNames = map[string]string{
	"28":    "Action",
	"12":    "Adventure",
	"16":    "Animation",
	"35":    "Comedy",
	"80":    "Crime",
	"99":    "Documentary",
	"18":    "Drama",
	"10751": "Family",
	"14":    "Fantasy",
	"36":    "History",
	"27":    "Horror",
	"10402": "Music",
	"9648":  "Mystery",
	"10749": "Romance",
	"878":   "Science Fiction",
	"10770": "TV Movie",
	"53":    "Thriller",
	"10752": "War",
	"37":    "Western",
}

var tvGenreNames = map[string]string{
	"10759": "Action & Adventure",
	"16":    "Animation",
	"35":    "Comedy",
	"80":    "Crime",
	"99":    "Documentary",
	"18":    "Drama",
	"10751": "Family",
	"10762": "Kids",
	"9648":  "Mystery",
	"10763": "News",
	"10764": "Reality",
	"10765": "Sci-Fi & Fantasy",
	"10766": "Soap",
	"10767": "Talk",
	"10768": "War & Politics",
	"37":    "Western",
}

// tagName resolves a category tag to a display name. Unknown movie/TV genre
// IDs fall back to the raw tag so the reasoner never produces an empty word.
func tagName(media domain.MediaType, tag string) string {
	var names map[string]string
	switch media {
	case domain.MediaTypeMovie:
		names = movieGenreNames
	case domain.MediaTypeTV:
		names = tvGenreNames
	default:
		return tag
	}
	if name, ok := names[tag]; ok {
		return name
	}
	return tag
}
