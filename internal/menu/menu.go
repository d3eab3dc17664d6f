// Package menu holds the fixed course catalog and table ids shared by every
// other package.
package menu

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const (
	DishCount  = 13
	TableCount = 7
)

// Dishes is the ordered course sequence served to every table.
var Dishes = [DishCount]string{
	"ウニトロ", "5種盛り", "一品", "水蛸・白身", "アワビ", "貝・マグロ",
	"小丼", "光物・漬け", "焼き物", "蒸し・穴子", "追加", "吸い物", "玉",
}

// Tables lists the floor's table ids in display order.
var Tables = [TableCount]string{"11", "12", "21", "22", "31", "32", "33"}

// ValidDish reports whether i indexes a dish slot.
func ValidDish(i int) bool { return i >= 0 && i < DishCount }

// ValidTable reports whether id is one of the fixed tables.
func ValidTable(id string) bool {
	for _, t := range Tables {
		if t == id {
			return true
		}
	}
	return false
}

// DishName returns the name of dish i, or false when i is out of range.
func DishName(i int) (string, bool) {
	if !ValidDish(i) {
		return "", false
	}
	return Dishes[i], true
}

// Label renders a dish as "n. name" with a 1-based course number.
func Label(i int) string {
	name, ok := DishName(i)
	if !ok {
		return fmt.Sprintf("%d. ?", i+1)
	}
	return fmt.Sprintf("%d. %s", i+1, name)
}

// maxSearchDistance is the normalized edit distance above which a dish is
// dropped from search results.
const maxSearchDistance = 0.6

type searchHit struct {
	index int
	rank  int
	dist  float64
}

// Search ranks dish indices against a free-text query. An empty query keeps
// catalog order.
func Search(query string) []int {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		out := make([]int, DishCount)
		for i := range out {
			out[i] = i
		}
		return out
	}

	numbered := -1
	if n, err := strconv.Atoi(q); err == nil && ValidDish(n-1) {
		numbered = n - 1
	}

	var hits []searchHit
	for i, name := range Dishes {
		lower := strings.ToLower(name)
		switch {
		case i == numbered:
			hits = append(hits, searchHit{index: i, rank: 0})
		case strings.Contains(lower, q):
			hits = append(hits, searchHit{index: i, rank: 1})
		default:
			d := normalizedDistance(q, lower)
			if d < maxSearchDistance {
				hits = append(hits, searchHit{index: i, rank: 2, dist: d})
			}
		}
	}
	sort.SliceStable(hits, func(a, b int) bool {
		if hits[a].rank != hits[b].rank {
			return hits[a].rank < hits[b].rank
		}
		if hits[a].dist != hits[b].dist {
			return hits[a].dist < hits[b].dist
		}
		return hits[a].index < hits[b].index
	})
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.index)
	}
	return out
}

func normalizedDistance(a, b string) float64 {
	longest := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > longest {
		longest = n
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
