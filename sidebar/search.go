// Copyright (c) OneClick
// SPDX-License-Identifier: Apache-2.0

package sidebar

import (
	"sort"
	"strings"
)

// Match is a single search hit with its ranking score.
type Match struct {
	Kind  Kind
	Item  Item
	score int
}

// Search returns index entries matching the query, best matches first.
// Exact name matches rank above prefix matches, which rank above
// substring and summary matches. Matching is case-insensitive.
func (idx Index) Search(query string) []Match {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var matches []Match
	for kind, items := range idx.Items {
		for _, item := range items {
			score := rank(item, query)
			if score == 0 {
				continue
			}
			matches = append(matches, Match{Kind: kind, Item: item, score: score})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].Item.Name < matches[j].Item.Name
	})

	return matches
}

func rank(item Item, query string) int {
	name := strings.ToLower(item.Name)
	switch {
	case name == query:
		return 4
	case strings.HasPrefix(name, query):
		return 3
	case strings.Contains(name, query):
		return 2
	case strings.Contains(strings.ToLower(item.Summary), query):
		return 1
	default:
		return 0
	}
}
