package models

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPageSize   = 10
	MaxPublicPageSize = 50
	MaxCMSPageSize    = 100
)

// SortKey is the closed set of sortable fields. Anything outside the set
// falls back to SortByCreatedAt instead of erroring.
type SortKey string

const (
	SortByCreatedAt     SortKey = "createdat"
	SortByTitle         SortKey = "title"
	SortByPublishedDate SortKey = "publisheddate"
	SortByViewCount     SortKey = "viewcount"
	SortByRating        SortKey = "rating"
	SortByDuration      SortKey = "duration"
)

func ParseSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(s))) {
	case SortByTitle:
		return SortByTitle
	case SortByPublishedDate:
		return SortByPublishedDate
	case SortByViewCount:
		return SortByViewCount
	case SortByRating:
		return SortByRating
	case SortByDuration:
		return SortByDuration
	default:
		return SortByCreatedAt
	}
}

// Column maps a sort key onto its programs column.
func (k SortKey) Column() string {
	switch k {
	case SortByTitle:
		return "title"
	case SortByPublishedDate:
		return "published_date"
	case SortByViewCount:
		return "view_count"
	case SortByRating:
		return "rating"
	case SortByDuration:
		return "duration_sec"
	default:
		return "created_at"
	}
}

// SearchCriteria drives a program search. All filters are optional and
// combined with AND. A nil Status means "published only"; StatusAll (0)
// disables the status filter for editorial callers.
type SearchCriteria struct {
	SearchTerm     string         `json:"search_term"`
	Type           *ProgramType   `json:"type"`
	Language       *Language      `json:"language"`
	Status         *ProgramStatus `json:"status"`
	CategoryIDs    []uuid.UUID    `json:"category_ids"`
	TagIDs         []uuid.UUID    `json:"tag_ids"`
	FromDate       *time.Time     `json:"from_date"`
	ToDate         *time.Time     `json:"to_date"`
	Page           int            `json:"page"`
	PageSize       int            `json:"page_size"`
	SortBy         SortKey        `json:"sort_by"`
	SortDescending bool           `json:"sort_descending"`
}

// Normalize clamps pagination to sane bounds before the criteria reach the
// store. maxPageSize differs between the public and editorial surfaces.
func (c *SearchCriteria) Normalize(maxPageSize int) {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PageSize < 1 {
		c.PageSize = DefaultPageSize
	}
	if c.PageSize > maxPageSize {
		c.PageSize = maxPageSize
	}
	c.SortBy = ParseSortKey(string(c.SortBy))
}

// CacheKey builds a canonical string for the criteria so identical searches
// share a cache slot. ID sets are sorted to make the key order-independent.
func (c SearchCriteria) CacheKey() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(strings.TrimSpace(c.SearchTerm)))
	b.WriteByte('|')
	writeInt := func(v *int) {
		if v != nil {
			b.WriteString(strconv.Itoa(*v))
		}
		b.WriteByte('|')
	}
	writeEnum := func(v int, ok bool) {
		p := &v
		if !ok {
			p = nil
		}
		writeInt(p)
	}
	writeEnum(int(deref(c.Type)), c.Type != nil)
	writeEnum(int(deref(c.Language)), c.Language != nil)
	writeEnum(int(deref(c.Status)), c.Status != nil)
	b.WriteString(joinIDs(c.CategoryIDs))
	b.WriteByte('|')
	b.WriteString(joinIDs(c.TagIDs))
	b.WriteByte('|')
	if c.FromDate != nil {
		b.WriteString(c.FromDate.UTC().Format(time.RFC3339))
	}
	b.WriteByte('|')
	if c.ToDate != nil {
		b.WriteString(c.ToDate.UTC().Format(time.RFC3339))
	}
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(c.Page))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(c.PageSize))
	b.WriteByte('|')
	b.WriteString(string(c.SortBy))
	b.WriteByte('|')
	b.WriteString(strconv.FormatBool(c.SortDescending))
	return b.String()
}

func deref[T ~int](p *T) T {
	if p == nil {
		return 0
	}
	return *p
}

func joinIDs(ids []uuid.UUID) string {
	if len(ids) == 0 {
		return ""
	}
	ss := make([]string, len(ids))
	for i, id := range ids {
		ss[i] = id.String()
	}
	sort.Strings(ss)
	return strings.Join(ss, ",")
}

// SearchResult is one page of matches plus the pre-pagination total.
type SearchResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
}
