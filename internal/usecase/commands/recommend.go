package commands

import (
	"context"
	"math/rand/v2"

	"dining-concierge/internal/domain/restaurant"
	"dining-concierge/internal/infra"
	"dining-concierge/internal/pkg/errs"
)

var ErrInsufficientCandidates = errs.New("insufficient restaurant candidates")

// RecommendationCount is the number of suggestions in every notification.
const RecommendationCount = 3

// RecommendationSelector draws unique restaurant suggestions for a cuisine
// from the search index and the record store.
type RecommendationSelector struct {
	search RestaurantSearch
	store  RestaurantStore
}

func NewRecommendationSelector(search RestaurantSearch, store RestaurantStore) *RecommendationSelector {
	return &RecommendationSelector{
		search: search,
		store:  store,
	}
}

// Select returns exactly RecommendationCount records with pairwise-distinct
// ids and non-empty addresses, drawn uniformly at random from the candidate
// pool. Records with a missing or sentinel address are skipped and replaced by
// further draws; once the pool is exhausted without filling the quota the
// selection fails with ErrInsufficientCandidates. The walk over the shuffled
// pool bounds the retry loop by the pool size.
func (s *RecommendationSelector) Select(ctx context.Context, cuisine string) ([]restaurant.Record, error) {
	ids, err := s.search.SearchByCategory(ctx, cuisine)
	if err != nil {
		return nil, err
	}

	pool := dedupe(ids)
	if len(pool) < RecommendationCount {
		return nil, errs.Mark(errs.Newf("only %d candidates for cuisine %q", len(pool), cuisine), ErrInsufficientCandidates)
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	picks := make([]restaurant.Record, 0, RecommendationCount)
	for _, id := range pool {
		record, err := s.store.GetByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				continue
			}
			return nil, err
		}
		if !record.HasAddress() {
			continue
		}
		picks = append(picks, *record)
		if len(picks) == RecommendationCount {
			return picks, nil
		}
	}

	return nil, errs.Mark(errs.Newf("candidate pool exhausted for cuisine %q", cuisine), ErrInsufficientCandidates)
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
