// Package ranking orders scored items, highest first.
package ranking

import (
	"slices"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
)

// Rank returns a new slice with items sorted by descending score. Items with
// equal scores keep their input order. An absent score (ok == false) ranks as 0.
// The input slice is not modified.
func Rank[T any](items []T, scoreOf func(T) (int, bool)) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		return effective(scoreOf, b) - effective(scoreOf, a)
	})
	return out
}

func effective[T any](scoreOf func(T) (int, bool), item T) int {
	s, ok := scoreOf(item)
	if !ok {
		return 0
	}
	return s
}

func Districts(items []domain.ScoredDistrict) []domain.ScoredDistrict {
	return Rank(items, func(d domain.ScoredDistrict) (int, bool) {
		return d.MatchScore, true
	})
}

func Locations(items []domain.CandidateLocation) []domain.CandidateLocation {
	return Rank(items, func(l domain.CandidateLocation) (int, bool) {
		if l.Score == nil {
			return 0, false
		}
		return *l.Score, true
	})
}
