package recommend

import (
	"sort"

	"mediaMatcher/domain"
)

const minLikedItems = 3

// Profile aggregates the preference signals implied by a request's liked
// items. Built fresh per request; never persisted.
type Profile struct {
	// TagCounts maps category tag -> occurrence count across all liked items.
	TagCounts map[string]int
	// tagOrder remembers first-seen order so top-N ties break stably.
	tagOrder []string
	// ExcludedIDs holds every liked item's identifier.
	ExcludedIDs map[string]struct{}
	// Authors is a presence set (books only); overlap is tested, not weighted.
	Authors map[string]struct{}
	// Titles keeps the input titles in request order for the reasoner.
	Titles []string
}

// BuildProfile tallies tags, authors, and identifiers from the liked items.
func BuildProfile(items []domain.LikedItem) (*Profile, error) {
	if len(items) < minLikedItems {
		return nil, ErrInsufficientInput
	}

	p := &Profile{
		TagCounts:   make(map[string]int),
		ExcludedIDs: make(map[string]struct{}),
		Authors:     make(map[string]struct{}),
	}

	for _, item := range items {
		for _, tag := range item.Tags {
			if _, seen := p.TagCounts[tag]; !seen {
				p.tagOrder = append(p.tagOrder, tag)
			}
			p.TagCounts[tag]++
		}
		for _, author := range item.Authors {
			p.Authors[author] = struct{}{}
		}
		if item.ID != "" {
			p.ExcludedIDs[item.ID] = struct{}{}
		}
		p.Titles = append(p.Titles, item.Title)
	}

	return p, nil
}

// TopTags returns up to n tags ordered by count descending, ties broken by
// first-encountered order.
func (p *Profile) TopTags(n int) []string {
	tags := make([]string, len(p.tagOrder))
	copy(tags, p.tagOrder)

	sort.SliceStable(tags, func(i, j int) bool {
		return p.TagCounts[tags[i]] > p.TagCounts[tags[j]]
	})

	if len(tags) > n {
		tags = tags[:n]
	}
	return tags
}

// SharedTags returns the candidate's tags that appear in the profile,
// preserving the candidate's tag order.
func (p *Profile) SharedTags(c domain.Candidate) []string {
	var shared []string
	for _, tag := range c.Tags {
		if p.TagCounts[tag] > 0 {
			shared = append(shared, tag)
		}
	}
	return shared
}

// SharedAuthors returns the candidate's authors present in the profile.
func (p *Profile) SharedAuthors(c domain.Candidate) []string {
	var shared []string
	for _, author := range c.Authors {
		if _, ok := p.Authors[author]; ok {
			shared = append(shared, author)
		}
	}
	return shared
}
