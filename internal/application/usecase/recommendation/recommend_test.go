package recommendation

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/domain/entity"
)

// Fixed IDs give the transition lists a known order.
var (
	seedID = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	tagAID = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	tagBID = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
)

type fakeTagRepo struct {
	tags []*entity.Tag
}

func (f *fakeTagRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Tag, error) {
	for _, tag := range f.tags {
		if tag.ID == id {
			return tag, nil
		}
	}
	return nil, nil
}

func (f *fakeTagRepo) List(_ context.Context, _ string, _ int) ([]*entity.Tag, error) {
	return f.tags, nil
}

func (f *fakeTagRepo) FindAllActive(_ context.Context) ([]*entity.Tag, error) {
	return f.tags, nil
}

func (f *fakeTagRepo) ChangedSince(_ context.Context, _ time.Time) ([]*entity.Tag, error) {
	return f.tags, nil
}

type fakeGraphRepo struct {
	edges []*entity.GraphEdge
}

func (f *fakeGraphRepo) FindAllEdges(_ context.Context) ([]*entity.GraphEdge, error) {
	return f.edges, nil
}

func (f *fakeGraphRepo) ChangedSince(_ context.Context, _ time.Time) ([]*entity.GraphEdge, error) {
	return f.edges, nil
}

type fakeCache struct {
	entries map[uuid.UUID][]entity.Recommendation
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[uuid.UUID][]entity.Recommendation)}
}

func (f *fakeCache) Get(_ context.Context, seedTagID uuid.UUID) ([]entity.Recommendation, bool, error) {
	recs, ok := f.entries[seedTagID]
	return recs, ok, nil
}

func (f *fakeCache) Set(_ context.Context, seedTagID uuid.UUID, recs []entity.Recommendation) error {
	f.entries[seedTagID] = recs
	f.sets++
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, tagIDs []uuid.UUID) error {
	for _, id := range tagIDs {
		delete(f.entries, id)
	}
	return nil
}

// scriptedRand returns the given values in order and fails the test if the
// walk draws more than expected.
func scriptedRand(t *testing.T, values []float64) func() float64 {
	t.Helper()
	i := 0
	return func() float64 {
		if i >= len(values) {
			t.Fatalf("random sequence exhausted after %d draws", len(values))
		}
		v := values[i]
		i++
		return v
	}
}

func testTags() []*entity.Tag {
	return []*entity.Tag{
		{ID: seedID, Name: "seed"},
		{ID: tagAID, Name: "alpha"},
		{ID: tagBID, Name: "beta"},
	}
}

// testEdges builds seed->A weight 3, seed->B weight 1, A->seed weight 1, so
// seed's transitions are [A 0.75, B 0.25] in ID order.
func testEdges() []*entity.GraphEdge {
	return []*entity.GraphEdge{
		{ID: uuid.New(), FromTagID: seedID, ToTagID: tagAID, Weight: 3},
		{ID: uuid.New(), FromTagID: seedID, ToTagID: tagBID, Weight: 1},
		{ID: uuid.New(), FromTagID: tagAID, ToTagID: seedID, Weight: 1},
	}
}

func TestRecommendUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("walk visits are deterministic for a fixed random sequence", func(t *testing.T) {
		uc := NewRecommendUseCase(&fakeGraphRepo{edges: testEdges()}, &fakeTagRepo{tags: testTags()}, nil, Params{
			Alpha:        0.8,
			Iterations:   1,
			MaxWalkSteps: 10,
		})
		// Draw 1: 0.5 <= 0.75 picks A. Draw 2: the only transition from A
		// leads back to the seed, which ends the walk.
		uc.randFloat = scriptedRand(t, []float64{0.5, 0.5})

		output, err := uc.Execute(ctx, RecommendInput{SeedTagID: seedID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Recommendations) != 1 {
			t.Fatalf("expected 1 recommendation, got %d", len(output.Recommendations))
		}
		rec := output.Recommendations[0]
		if rec.TagID != tagAID {
			t.Errorf("expected tag A, got %s", rec.TagID)
		}
		if rec.Score != 1.0 {
			t.Errorf("expected score 1.0 for 1 visit over 1 walk, got %v", rec.Score)
		}
	})

	t.Run("equal visit counts rank by tag ID", func(t *testing.T) {
		uc := NewRecommendUseCase(&fakeGraphRepo{edges: testEdges()}, &fakeTagRepo{tags: testTags()}, nil, Params{
			Alpha:        0.8,
			Iterations:   2,
			MaxWalkSteps: 10,
		})
		// Walk 1 visits A then steps back to the seed; walk 2 passes the
		// restart check and visits B, which has no outgoing edges.
		uc.randFloat = scriptedRand(t, []float64{0.5, 0.5, 0.9, 0.9})

		output, err := uc.Execute(ctx, RecommendInput{SeedTagID: seedID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Recommendations) != 2 {
			t.Fatalf("expected 2 recommendations, got %d", len(output.Recommendations))
		}
		if output.Recommendations[0].TagID != tagAID || output.Recommendations[1].TagID != tagBID {
			t.Errorf("expected order [A, B], got [%s, %s]",
				output.Recommendations[0].TagID, output.Recommendations[1].TagID)
		}
		for _, rec := range output.Recommendations {
			if rec.Score != 0.5 {
				t.Errorf("expected score 0.5 for 1 visit over 2 walks, got %v", rec.Score)
			}
		}
	})

	t.Run("unknown seed yields an empty list", func(t *testing.T) {
		uc := NewRecommendUseCase(&fakeGraphRepo{edges: testEdges()}, &fakeTagRepo{tags: testTags()}, nil, Params{})

		output, err := uc.Execute(ctx, RecommendInput{SeedTagID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Recommendations) != 0 {
			t.Errorf("expected no recommendations, got %d", len(output.Recommendations))
		}
	})

	t.Run("seed without edges yields an empty list", func(t *testing.T) {
		uc := NewRecommendUseCase(&fakeGraphRepo{}, &fakeTagRepo{tags: testTags()}, nil, Params{})

		output, err := uc.Execute(ctx, RecommendInput{SeedTagID: seedID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Recommendations) != 0 {
			t.Errorf("expected no recommendations, got %d", len(output.Recommendations))
		}
	})

	t.Run("second run is served from the cache", func(t *testing.T) {
		cache := newFakeCache()
		uc := NewRecommendUseCase(&fakeGraphRepo{edges: testEdges()}, &fakeTagRepo{tags: testTags()}, cache, Params{
			Alpha:        0.8,
			Iterations:   1,
			MaxWalkSteps: 10,
		})
		uc.randFloat = scriptedRand(t, []float64{0.5, 0.5})

		first, err := uc.Execute(ctx, RecommendInput{SeedTagID: seedID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.FromCache {
			t.Error("expected first run to miss the cache")
		}
		if cache.sets != 1 {
			t.Fatalf("expected 1 cache write, got %d", cache.sets)
		}

		// No scripted draws are left; a cache miss here would fail the test.
		second, err := uc.Execute(ctx, RecommendInput{SeedTagID: seedID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !second.FromCache {
			t.Error("expected second run to hit the cache")
		}
		if len(second.Recommendations) != len(first.Recommendations) {
			t.Errorf("expected identical results, got %d vs %d",
				len(second.Recommendations), len(first.Recommendations))
		}
	})

	t.Run("limit slices the ranked list", func(t *testing.T) {
		uc := NewRecommendUseCase(&fakeGraphRepo{edges: testEdges()}, &fakeTagRepo{tags: testTags()}, nil, Params{
			Alpha:        0.8,
			Iterations:   2,
			MaxWalkSteps: 10,
		})
		uc.randFloat = scriptedRand(t, []float64{0.5, 0.5, 0.9, 0.9})

		output, err := uc.Execute(ctx, RecommendInput{SeedTagID: seedID, Limit: 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Recommendations) != 1 {
			t.Fatalf("expected list sliced to 1, got %d", len(output.Recommendations))
		}
		if output.Recommendations[0].TagID != tagAID {
			t.Errorf("expected top entry A, got %s", output.Recommendations[0].TagID)
		}
	})
}
