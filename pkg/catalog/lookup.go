package catalog

import (
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/arthur-debert/wort/pkg/errors"
)

// maxSuggestions caps the "did you mean" list attached to lookup errors.
const maxSuggestions = 5

// Fermentables returns a copy of the fermentables table in catalog order.
func Fermentables() []FermentableEntry {
	return slices.Clone(fermentables)
}

// Cultures returns a copy of the culture bank in catalog order.
func Cultures() []CultureEntry {
	return slices.Clone(cultures)
}

// Fermentable looks up a fermentable by key or display name.
func Fermentable(key string) (FermentableEntry, error) {
	for _, f := range fermentables {
		if matches(key, f.Key, f.Name) {
			return f, nil
		}
	}
	return FermentableEntry{}, unknown("fermentable", key, fermentableKeys())
}

// Culture looks up a culture by key or display name.
func Culture(key string) (CultureEntry, error) {
	for _, c := range cultures {
		if matches(key, c.Key, c.Name) {
			return c, nil
		}
	}
	return CultureEntry{}, unknown("culture", key, cultureKeys())
}

// SearchFermentables returns the fermentables whose key or name fuzzily
// matches query, best match first.
func SearchFermentables(query string) []FermentableEntry {
	idx := search(query, len(fermentables), func(i int) []string {
		return []string{fermentables[i].Key, fermentables[i].Name}
	})
	out := make([]FermentableEntry, 0, len(idx))
	for _, i := range idx {
		out = append(out, fermentables[i])
	}
	return out
}

// SearchCultures returns the cultures whose key or name fuzzily matches
// query, best match first.
func SearchCultures(query string) []CultureEntry {
	idx := search(query, len(cultures), func(i int) []string {
		return []string{cultures[i].Key, cultures[i].Name}
	})
	out := make([]CultureEntry, 0, len(idx))
	for _, i := range idx {
		out = append(out, cultures[i])
	}
	return out
}

func matches(query string, candidates ...string) bool {
	q := strings.TrimSpace(query)
	for _, c := range candidates {
		if strings.EqualFold(q, c) {
			return true
		}
	}
	return false
}

func fermentableKeys() []string {
	keys := make([]string, len(fermentables))
	for i, f := range fermentables {
		keys[i] = f.Key
	}
	return keys
}

func cultureKeys() []string {
	keys := make([]string, len(cultures))
	for i, c := range cultures {
		keys[i] = c.Key
	}
	return keys
}

// search ranks n entries against query. An empty query returns every
// entry in catalog order.
func search(query string, n int, fields func(int) []string) []int {
	query = strings.TrimSpace(query)
	if query == "" {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}

	best := make(map[int]int)
	for i := 0; i < n; i++ {
		for _, field := range fields(i) {
			ranks := fuzzy.RankFindNormalizedFold(query, []string{field})
			if len(ranks) == 0 {
				continue
			}
			if d, ok := best[i]; !ok || ranks[0].Distance < d {
				best[i] = ranks[0].Distance
			}
		}
	}

	idx := make([]int, 0, len(best))
	for i := range best {
		idx = append(idx, i)
	}
	sort.SliceStable(idx, func(a, b int) bool {
		if best[idx[a]] != best[idx[b]] {
			return best[idx[a]] < best[idx[b]]
		}
		return idx[a] < idx[b]
	})
	return idx
}

// suggest returns the keys closest to query: subsequence matches first,
// then keys within a small edit distance.
func suggest(query string, keys []string) []string {
	var out []string
	seen := make(map[string]bool)

	ranks := fuzzy.RankFindNormalizedFold(query, keys)
	sort.Sort(ranks)
	for _, r := range ranks {
		if len(out) == maxSuggestions {
			return out
		}
		out = append(out, r.Target)
		seen[r.Target] = true
	}

	limit := max(2, len(query)/4)
	type scored struct {
		key  string
		dist int
	}
	var near []scored
	lq := strings.ToLower(query)
	for _, k := range keys {
		if seen[k] {
			continue
		}
		if d := fuzzy.LevenshteinDistance(lq, strings.ToLower(k)); d <= limit {
			near = append(near, scored{k, d})
		}
	}
	sort.SliceStable(near, func(a, b int) bool { return near[a].dist < near[b].dist })
	for _, s := range near {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, s.key)
	}
	return out
}

func unknown(kind, key string, keys []string) error {
	return errors.Newf(errors.ErrUnknownIngredient, "unknown %s %q", kind, key).
		WithDetail("kind", kind).
		WithDetail("key", key).
		WithDetail("valid_keys", keys).
		WithDetail("suggestions", suggest(key, keys))
}
