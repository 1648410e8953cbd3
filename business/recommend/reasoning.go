package recommend

import (
	"fmt"
	"strings"

	"mediaMatcher/domain"
)

// buildReasoning composes a short justification for the winner: an opening
// clause tying it to the user's input, an optional recency clause, and an
// optional quality/origin clause. Clauses are joined with single spaces.
func buildReasoning(winner domain.Candidate, p *Profile, cfg DomainConfig) string {
	var parts []string

	parts = append(parts, openingClause(winner, p, cfg))

	if clause := recencyClause(winner, cfg); clause != "" {
		parts = append(parts, clause)
	}

	parts = append(parts, qualityClauses(winner, cfg)...)

	return strings.Join(parts, " ")
}

func openingClause(winner domain.Candidate, p *Profile, cfg DomainConfig) string {
	shared := p.SharedTags(winner)

	switch cfg.Media {
	case domain.MediaTypeMovie:
		if len(shared) > 0 {
			return fmt.Sprintf("Perfect match for your %s preferences from films like %s.",
				tagPhrase(cfg.Media, shared), p.Titles[0])
		}
		return fmt.Sprintf("Cinematically connected to your appreciation for %s and %s.",
			p.Titles[0], p.Titles[1])

	case domain.MediaTypeTV:
		if len(shared) > 0 {
			return fmt.Sprintf("Expertly crafted %s storytelling that builds on your love for %s.",
				tagPhrase(cfg.Media, shared), p.Titles[0])
		}
		return fmt.Sprintf("Narrative excellence that resonates with your appreciation for %s and %s.",
			p.Titles[0], p.Titles[1])

	default: // books
		if len(shared) > 0 {
			return fmt.Sprintf("Perfect match for your %s interests from %s.",
				tagPhrase(cfg.Media, shared), titlePhrase(p.Titles))
		}
		if authors := p.SharedAuthors(winner); len(authors) > 0 {
			return fmt.Sprintf("Since you enjoyed %s, this explores similar storytelling mastery.",
				authors[0])
		}
		return fmt.Sprintf("Thematically connected to your taste for %s.", titlePhrase(p.Titles))
	}
}

func recencyClause(winner domain.Candidate, cfg DomainConfig) string {
	year, ok := releaseYear(winner.ReleaseDate)
	if !ok {
		return ""
	}

	switch cfg.Media {
	case domain.MediaTypeMovie:
		if year >= cfg.RecentYear {
			return "A standout recent release."
		}
		if year <= cfg.ClassicYear {
			return "A cinematic masterpiece from film history."
		}
	case domain.MediaTypeTV:
		if year >= cfg.RecentYear {
			return "A compelling new series gaining critical acclaim."
		}
		if year <= cfg.ClassicYear {
			return "A groundbreaking series that defined television."
		}
	default:
		if year >= cfg.RecentYear {
			return "A highly acclaimed recent release."
		}
		if year <= cfg.ClassicYear {
			return "A timeless classic that shaped literature."
		}
	}
	return ""
}

func qualityClauses(winner domain.Candidate, cfg DomainConfig) []string {
	var parts []string

	if winner.Rating >= cfg.HighRating {
		switch cfg.Media {
		case domain.MediaTypeMovie:
			parts = append(parts, fmt.Sprintf("Exceptional %.1f/10 rating from critics and audiences.", winner.Rating))
		case domain.MediaTypeTV:
			parts = append(parts, fmt.Sprintf("Outstanding %.1f/10 viewer and critic ratings.", winner.Rating))
		default:
			parts = append(parts, "Exceptional reader ratings and critical acclaim.")
		}
	}

	switch cfg.Media {
	case domain.MediaTypeMovie:
		if winner.Language != "" && winner.Language != cfg.NativeLanguage {
			parts = append(parts, "Expands your horizons with international cinema.")
		}
	case domain.MediaTypeTV:
		if len(winner.OriginCountry) > 0 && !containsString(winner.OriginCountry, cfg.DomesticCountry) {
			parts = append(parts, fmt.Sprintf("Acclaimed international production from %s.", winner.OriginCountry[0]))
		}
	}

	return parts
}

// tagPhrase joins up to two shared tag names, lowercased.
func tagPhrase(media domain.MediaType, tags []string) string {
	if len(tags) > 2 {
		tags = tags[:2]
	}
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tagName(media, tag))
	}
	return strings.ToLower(strings.Join(names, ", "))
}

// titlePhrase joins up to two input titles.
func titlePhrase(titles []string) string {
	if len(titles) > 2 {
		titles = titles[:2]
	}
	return strings.Join(titles, ", ")
}
