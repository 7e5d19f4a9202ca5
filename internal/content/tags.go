package content

import (
	"sort"
)

// TagIndex maps each tag to the posts carrying it, in rendering order.
//
// Aggregation is pure: identical post sets always yield identical ordering.
type TagIndex struct {
	tags  []string
	byTag map[string][]*Document
}

// BuildTagIndex derives the tag index from the full set of posts. Posts under
// each tag are ordered by date descending with slug-ascending tiebreaks;
// undated posts sort after all dated ones.
func BuildTagIndex(posts []*Document) *TagIndex {
	byTag := make(map[string][]*Document)
	for _, post := range posts {
		for _, tag := range post.Tags {
			byTag[tag] = append(byTag[tag], post)
		}
	}

	tags := make([]string, 0, len(byTag))
	for tag := range byTag {
		SortPosts(byTag[tag])
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return &TagIndex{tags: tags, byTag: byTag}
}

// Tags returns all tags with at least one post, sorted ascending.
func (ti *TagIndex) Tags() []string { return ti.tags }

// Posts returns the ordered posts for a tag.
func (ti *TagIndex) Posts(tag string) []*Document { return ti.byTag[tag] }

// Len returns the number of distinct tags.
func (ti *TagIndex) Len() int { return len(ti.tags) }

// SortPosts orders posts by date descending, slug ascending on equal dates.
// Posts without a date sort last.
func SortPosts(posts []*Document) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		if a.HasDate != b.HasDate {
			return a.HasDate
		}
		if a.HasDate && !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.Slug < b.Slug
	})
}
