// Package recommendation implements the tag-affinity recommendation engine.
//
// Recommendations are produced by a random walk with restart over the tag
// co-occurrence graph: edge weights are normalized to transition
// probabilities per source tag, and repeated bounded walks from the seed tag
// count visits to the other tags. The visit counts, normalized by the number
// of walks, become the scores.
package recommendation

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/domain/entity"
)

// Default walk parameters.
const (
	DefaultAlpha        = 0.8
	DefaultIterations   = 20
	DefaultMaxWalkSteps = 10
	DefaultTopK         = 10
)

// Params configures the random walk. Zero values fall back to the defaults.
type Params struct {
	// Alpha is the walk continuation probability; a walk back at the seed
	// restarts with probability 1-Alpha.
	Alpha float64

	// Iterations is the number of walks per recommendation run.
	Iterations int

	// MaxWalkSteps bounds the length of a single walk.
	MaxWalkSteps int

	// TopK is the default result list size when the caller gives no limit.
	TopK int
}

func (p Params) withDefaults() Params {
	if p.Alpha <= 0 || p.Alpha >= 1 {
		p.Alpha = DefaultAlpha
	}
	if p.Iterations <= 0 {
		p.Iterations = DefaultIterations
	}
	if p.MaxWalkSteps <= 0 {
		p.MaxWalkSteps = DefaultMaxWalkSteps
	}
	if p.TopK <= 0 {
		p.TopK = DefaultTopK
	}
	return p
}

// RecommendInput represents the input for a recommendation run.
type RecommendInput struct {
	SeedTagID uuid.UUID
	Limit     int
}

// RecommendOutput represents the output of a recommendation run.
type RecommendOutput struct {
	Recommendations []entity.Recommendation
	FromCache       bool
}

// RecommendUseCase produces ranked tag recommendations for a seed tag.
type RecommendUseCase struct {
	graph  adapter.GraphRepository
	tags   adapter.TagRepository
	cache  adapter.RecommendationCache
	params Params

	// randFloat yields uniform values in [0, 1). Swappable for deterministic
	// walks in tests.
	randFloat func() float64
}

// NewRecommendUseCase creates a new RecommendUseCase instance.
func NewRecommendUseCase(
	graph adapter.GraphRepository,
	tags adapter.TagRepository,
	cache adapter.RecommendationCache,
	params Params,
) *RecommendUseCase {
	return &RecommendUseCase{
		graph:     graph,
		tags:      tags,
		cache:     cache,
		params:    params.withDefaults(),
		randFloat: rand.Float64,
	}
}

// Execute runs the recommendation for the seed tag. An unknown seed yields an
// empty list, not an error. The full ranked list is cached per seed; the
// caller's limit only slices the response.
func (uc *RecommendUseCase) Execute(ctx context.Context, input RecommendInput) (*RecommendOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = uc.params.TopK
	}

	if uc.cache != nil {
		cached, hit, err := uc.cache.Get(ctx, input.SeedTagID)
		if err != nil {
			slog.Warn("Recommendation cache read failed", "seedTagID", input.SeedTagID, "error", err)
		} else if hit {
			return &RecommendOutput{
				Recommendations: sliceTop(cached, limit),
				FromCache:       true,
			}, nil
		}
	}

	allTags, err := uc.tags.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load tags: %w", err)
	}

	tagNames := make(map[uuid.UUID]string, len(allTags))
	for _, t := range allTags {
		tagNames[t.ID] = t.Name
	}
	if _, ok := tagNames[input.SeedTagID]; !ok {
		return &RecommendOutput{Recommendations: []entity.Recommendation{}}, nil
	}

	edges, err := uc.graph.FindAllEdges(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph edges: %w", err)
	}

	adjacency := buildTransitions(edges, tagNames)
	visits := uc.walk(input.SeedTagID, adjacency)

	ranked := rank(visits, tagNames, uc.params.Iterations)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, input.SeedTagID, ranked); err != nil {
			slog.Warn("Recommendation cache write failed", "seedTagID", input.SeedTagID, "error", err)
		}
	}

	return &RecommendOutput{Recommendations: sliceTop(ranked, limit)}, nil
}

// transition is one outgoing probability step from a source tag.
type transition struct {
	toTagID uuid.UUID
	prob    float64
}

// buildTransitions normalizes edge weights into per-source transition
// probabilities. Edges leaving deleted tags are dropped; transitions are kept
// in a stable order by destination ID so walks with a fixed random sequence
// are reproducible.
func buildTransitions(edges []*entity.GraphEdge, tagNames map[uuid.UUID]string) map[uuid.UUID][]transition {
	weights := make(map[uuid.UUID][]*entity.GraphEdge)
	totals := make(map[uuid.UUID]int64)
	for _, edge := range edges {
		if _, ok := tagNames[edge.FromTagID]; !ok {
			continue
		}
		weights[edge.FromTagID] = append(weights[edge.FromTagID], edge)
		totals[edge.FromTagID] += edge.Weight
	}

	adjacency := make(map[uuid.UUID][]transition, len(weights))
	for from, outgoing := range weights {
		total := totals[from]
		if total <= 0 {
			continue
		}
		transitions := make([]transition, 0, len(outgoing))
		for _, edge := range outgoing {
			transitions = append(transitions, transition{
				toTagID: edge.ToTagID,
				prob:    float64(edge.Weight) / float64(total),
			})
		}
		sort.Slice(transitions, func(i, j int) bool {
			return transitions[i].toTagID.String() < transitions[j].toTagID.String()
		})
		adjacency[from] = transitions
	}
	return adjacency
}

// walk runs the configured number of bounded random walks from the seed and
// counts visits to the other tags. Visit counts accumulate across walks.
func (uc *RecommendUseCase) walk(seed uuid.UUID, adjacency map[uuid.UUID][]transition) map[uuid.UUID]int {
	visits := make(map[uuid.UUID]int)
	current := seed

	for i := 0; i < uc.params.Iterations; i++ {
		steps := 0
		for steps < uc.params.MaxWalkSteps {
			if current == seed && len(visits) > 0 {
				if uc.randFloat() < 1-uc.params.Alpha {
					break
				}
			}

			transitions := adjacency[current]
			if len(transitions) == 0 {
				break
			}

			r := uc.randFloat()
			cumulative := 0.0
			next := uuid.Nil
			for _, t := range transitions {
				cumulative += t.prob
				if r <= cumulative {
					next = t.toTagID
					break
				}
			}

			// A step back onto the seed ends the walk instead of counting it.
			if next == uuid.Nil || next == seed {
				break
			}

			current = next
			visits[current]++
			steps++
		}
		current = seed
	}
	return visits
}

// rank orders visit counts into recommendations: highest count first, ties
// broken by tag ID so results are stable. Tags without a live name entry are
// dropped.
func rank(visits map[uuid.UUID]int, tagNames map[uuid.UUID]string, iterations int) []entity.Recommendation {
	type visited struct {
		tagID uuid.UUID
		count int
	}

	ordered := make([]visited, 0, len(visits))
	for tagID, count := range visits {
		if _, ok := tagNames[tagID]; !ok {
			continue
		}
		ordered = append(ordered, visited{tagID: tagID, count: count})
	}
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].tagID.String() < ordered[j].tagID.String()
	})

	ranked := make([]entity.Recommendation, len(ordered))
	for i, v := range ordered {
		ranked[i] = entity.Recommendation{
			TagID:   v.tagID,
			TagName: tagNames[v.tagID],
			Score:   float64(v.count) / float64(iterations),
		}
	}
	return ranked
}

func sliceTop(recommendations []entity.Recommendation, limit int) []entity.Recommendation {
	if len(recommendations) > limit {
		return recommendations[:limit]
	}
	return recommendations
}
