// Package search narrows a list of HUD names to the ones relevant to a
// query.
package search

import (
	"github.com/MrWheatley/hud-manager/errors"
	"github.com/sahilm/fuzzy"
)

// RelevanceThreshold is the minimum score, relative to the best match, a
// name needs to stay in the result set. The threshold being relative rather
// than absolute makes the filter adapt to query specificity: a vague query
// keeps many near-equal matches, a precise one keeps few.
const RelevanceThreshold = 0.8

// Filter scores every name against query and returns the set of names whose
// score is within RelevanceThreshold of the best match.
//
// An empty query returns a nil set, which callers interpret as "no filter".
// A query matching nothing returns a NO_RESULTS error.
func Filter(query string, names []string) (map[string]struct{}, error) {
	if query == "" {
		return nil, nil
	}

	matches := fuzzy.Find(query, names)
	if len(matches) == 0 {
		return nil, errors.NoResults(query)
	}

	// Matches arrive sorted by descending score.
	highest := matches[0].Score

	results := make(map[string]struct{})
	for _, m := range matches {
		// A non-positive best score makes the ratio meaningless; keep
		// every match in that case.
		if highest > 0 && float64(m.Score)/float64(highest) < RelevanceThreshold {
			continue
		}
		results[m.Str] = struct{}{}
	}
	return results, nil
}
