// Package query remembers looked up video ids and suggests them back for completion.
package query

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tubefetch/tubefetch/filesystem"
	"github.com/tubefetch/tubefetch/key"
	"github.com/tubefetch/tubefetch/where"
	"golang.org/x/exp/slices"
)

type record struct {
	Rank  int    `json:"rank"`
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (r *record) matches(q string) bool {
	return fuzzy.Match(q, r.ID) || fuzzy.MatchFold(q, r.Title)
}

var cacher = gache.New[map[string]*record](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*record)

// Remember records a video id, or raises its rank by weight if already known.
// A non-empty title replaces the remembered one.
func Remember(id, title string, weight int) error {
	id = strings.TrimSpace(id)
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*record)
	}

	if r, ok := cached[id]; ok {
		r.Rank += weight
		if title != "" {
			r.Title = title
		}
	} else {
		cached[id] = &record{Rank: weight, ID: id, Title: title}
	}

	suggestionCache = make(map[string][]*record)
	return cacher.Set(cached)
}

// Suggest returns the best remembered id for a partial input.
func Suggest(q string) mo.Option[string] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered ids whose id or title fuzzily matches q, highest rank first.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowSuggestions) {
		return []string{}
	}

	q = strings.TrimSpace(q)
	records, ok := suggestionCache[q]
	if !ok {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		records = lo.Filter(lo.Values(cached), func(r *record, _ int) bool {
			return r.matches(q)
		})

		slices.SortFunc(records, func(a, b *record) int {
			if a.Rank == b.Rank {
				return strings.Compare(a.ID, b.ID)
			}
			return b.Rank - a.Rank
		})

		suggestionCache[q] = records
	}

	return lo.Map(records, func(r *record, _ int) string {
		return r.ID
	})
}
