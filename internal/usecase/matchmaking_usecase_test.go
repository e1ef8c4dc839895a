package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skillswap/internal/domain/match"
	"skillswap/internal/domain/profile"
	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
)

type mockProfileRepo struct {
	byID       map[uuid.UUID]profile.Profile
	candidates []profile.Profile
	err        error
}

func (m mockProfileRepo) GetByID(_ context.Context, id uuid.UUID) (profile.Profile, error) {
	if m.err != nil {
		return profile.Profile{}, m.err
	}
	p, ok := m.byID[id]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (m mockProfileRepo) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.byID[id]
	return ok, nil
}

func (m mockProfileRepo) ListCandidates(_ context.Context, excludeID uuid.UUID) ([]profile.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]profile.Profile, 0, len(m.candidates))
	for _, p := range m.candidates {
		if p.UserID == excludeID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m mockProfileRepo) Upsert(_ context.Context, p profile.Profile) (profile.Profile, error) {
	if m.err != nil {
		return profile.Profile{}, m.err
	}
	return p, nil
}

type mockMatchRepo struct {
	existing  bool
	createErr error
	created   []match.Match
	listed    []match.WithUsers
}

func (m *mockMatchRepo) Create(_ context.Context, mm match.Match) (match.Match, error) {
	if m.createErr != nil {
		return match.Match{}, m.createErr
	}
	if mm.ID == uuid.Nil {
		mm.ID = uuid.New()
	}
	m.created = append(m.created, mm)
	return mm, nil
}

func (m *mockMatchRepo) ExistsForPair(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return m.existing, nil
}

func (m *mockMatchRepo) ListByUserID(context.Context, uuid.UUID) ([]match.WithUsers, error) {
	return m.listed, nil
}

type mockCache struct {
	deletedPatterns []string
}

func (m *mockCache) GetJSON(context.Context, string, any) (bool, error) {
	return false, nil
}

func (m *mockCache) SetJSON(context.Context, string, any, time.Duration) error {
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.deletedPatterns = append(m.deletedPatterns, pattern)
	return nil
}

func teachLearn(id uuid.UUID, name string, teach, learn []string) profile.Profile {
	p := profile.Profile{UserID: id, Name: name}
	for _, n := range teach {
		p.TeachSkills = append(p.TeachSkills, skill.Skill{Name: n})
	}
	for _, n := range learn {
		p.LearnSkills = append(p.LearnSkills, skill.Skill{Name: n})
	}
	return p
}

func TestFindMatches_InvalidLimit(t *testing.T) {
	uc := NewMatchmakingUsecase(mockProfileRepo{}, &mockMatchRepo{}, nil, nil)
	if _, err := uc.FindMatches(context.Background(), uuid.New(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.FindMatches(context.Background(), uuid.New(), -3); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFindMatches_UnknownUser(t *testing.T) {
	uc := NewMatchmakingUsecase(mockProfileRepo{byID: map[uuid.UUID]profile.Profile{}}, &mockMatchRepo{}, nil, nil)
	if _, err := uc.FindMatches(context.Background(), uuid.New(), 10); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindMatches_StoreFailure(t *testing.T) {
	uc := NewMatchmakingUsecase(mockProfileRepo{err: errors.New("connection refused")}, &mockMatchRepo{}, nil, nil)
	if _, err := uc.FindMatches(context.Background(), uuid.New(), 10); !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestFindMatches_RanksAndFilters(t *testing.T) {
	aliceID := uuid.New()
	bobID := uuid.New()
	carolID := uuid.New()
	daveID := uuid.New()

	alice := teachLearn(aliceID, "Alice", []string{"React"}, []string{"Python"})
	// Perfect reciprocal pair with Alice.
	bob := teachLearn(bobID, "Bob", []string{"Python"}, []string{"React"})
	// One-directional overlap only, diluted vocabulary.
	carol := teachLearn(carolID, "Carol", []string{"Python"}, []string{"Go"})
	// No reciprocal value at all.
	dave := teachLearn(daveID, "Dave", []string{"Figma"}, []string{"Photoshop"})

	repo := mockProfileRepo{
		byID:       map[uuid.UUID]profile.Profile{aliceID: alice},
		candidates: []profile.Profile{dave, carol, bob, alice},
	}
	uc := NewMatchmakingUsecase(repo, &mockMatchRepo{}, nil, nil)

	got, err := uc.FindMatches(context.Background(), aliceID, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 ranked matches, got %d", len(got))
	}
	if got[0].UserID != bobID {
		t.Fatalf("expected Bob first, got %s", got[0].Name)
	}
	if got[1].UserID != carolID {
		t.Fatalf("expected Carol second, got %s", got[1].Name)
	}
	if got[0].Score <= got[1].Score {
		t.Fatalf("expected strictly descending scores, got %v then %v", got[0].Score, got[1].Score)
	}
	for _, rm := range got {
		if rm.UserID == aliceID {
			t.Fatalf("requester leaked into results")
		}
		if rm.Score < 0 || rm.Score > 1 {
			t.Fatalf("score out of range: %v", rm.Score)
		}
	}
}

func TestFindMatches_TruncatesToLimit(t *testing.T) {
	aliceID := uuid.New()
	alice := teachLearn(aliceID, "Alice", []string{"React"}, []string{"Python"})

	candidates := []profile.Profile{
		teachLearn(uuid.New(), "Perfect", []string{"Python"}, []string{"React"}),
		teachLearn(uuid.New(), "Partial", []string{"Python"}, []string{"Go"}),
		teachLearn(uuid.New(), "Nothing", []string{"Figma"}, nil),
	}

	repo := mockProfileRepo{
		byID:       map[uuid.UUID]profile.Profile{aliceID: alice},
		candidates: candidates,
	}
	uc := NewMatchmakingUsecase(repo, &mockMatchRepo{}, nil, nil)

	got, err := uc.FindMatches(context.Background(), aliceID, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 result, got %d", len(got))
	}
	if got[0].Name != "Perfect" {
		t.Fatalf("expected the top-scoring candidate, got %s", got[0].Name)
	}
}

func TestFindMatches_TieBreakByIDAscending(t *testing.T) {
	aliceID := uuid.New()
	alice := teachLearn(aliceID, "Alice", []string{"React"}, []string{"Python"})

	idLow := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	idHigh := uuid.MustParse("99999999-9999-9999-9999-999999999999")

	// Identical skill sets give identical scores.
	first := teachLearn(idHigh, "High", []string{"Python"}, []string{"React"})
	second := teachLearn(idLow, "Low", []string{"Python"}, []string{"React"})

	repo := mockProfileRepo{
		byID:       map[uuid.UUID]profile.Profile{aliceID: alice},
		candidates: []profile.Profile{first, second},
	}
	uc := NewMatchmakingUsecase(repo, &mockMatchRepo{}, nil, nil)

	got, err := uc.FindMatches(context.Background(), aliceID, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].UserID != idLow || got[1].UserID != idHigh {
		t.Fatalf("expected id-ascending tie-break, got %s then %s", got[0].UserID, got[1].UserID)
	}
}

func TestCreateMatch_SelfMatch(t *testing.T) {
	uc := NewMatchmakingUsecase(mockProfileRepo{}, &mockMatchRepo{}, nil, nil)
	id := uuid.New()
	if _, err := uc.CreateMatch(context.Background(), id, id, 0.5, nil); !errors.Is(err, ErrSelfMatch) {
		t.Fatalf("expected ErrSelfMatch, got %v", err)
	}
}

func TestCreateMatch_UnknownUser(t *testing.T) {
	aID := uuid.New()
	repo := mockProfileRepo{byID: map[uuid.UUID]profile.Profile{aID: {UserID: aID}}}
	uc := NewMatchmakingUsecase(repo, &mockMatchRepo{}, nil, nil)

	if _, err := uc.CreateMatch(context.Background(), aID, uuid.New(), 0.5, nil); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateMatch_DuplicatePair(t *testing.T) {
	aID := uuid.New()
	bID := uuid.New()
	repo := mockProfileRepo{byID: map[uuid.UUID]profile.Profile{aID: {UserID: aID}, bID: {UserID: bID}}}

	uc := NewMatchmakingUsecase(repo, &mockMatchRepo{existing: true}, nil, nil)
	if _, err := uc.CreateMatch(context.Background(), bID, aID, 0.5, nil); !errors.Is(err, ErrMatchExists) {
		t.Fatalf("expected ErrMatchExists from pre-check, got %v", err)
	}

	// Lost race: pre-check passes but the storage unique index fires.
	uc = NewMatchmakingUsecase(repo, &mockMatchRepo{createErr: match.ErrDuplicatePair}, nil, nil)
	if _, err := uc.CreateMatch(context.Background(), aID, bID, 0.5, nil); !errors.Is(err, ErrMatchExists) {
		t.Fatalf("expected ErrMatchExists from insert, got %v", err)
	}
}

func TestCreateMatch_InvalidatesFindCache(t *testing.T) {
	aID := uuid.New()
	bID := uuid.New()
	repo := mockProfileRepo{byID: map[uuid.UUID]profile.Profile{aID: {UserID: aID}, bID: {UserID: bID}}}

	cache := &mockCache{}
	uc := NewMatchmakingUsecase(repo, &mockMatchRepo{}, cache, nil)

	if _, err := uc.CreateMatch(context.Background(), aID, bID, 0.5, nil); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.deletedPatterns) != 1 {
		t.Fatalf("expected 1 cache invalidation, got %d", len(cache.deletedPatterns))
	}
	if cache.deletedPatterns[0] != findMatchesCachePattern {
		t.Fatalf("unexpected invalidation pattern %q", cache.deletedPatterns[0])
	}

	// A failed create must leave cached results untouched.
	cache = &mockCache{}
	uc = NewMatchmakingUsecase(repo, &mockMatchRepo{existing: true}, cache, nil)
	if _, err := uc.CreateMatch(context.Background(), aID, bID, 0.5, nil); !errors.Is(err, ErrMatchExists) {
		t.Fatalf("expected ErrMatchExists, got %v", err)
	}
	if len(cache.deletedPatterns) != 0 {
		t.Fatalf("expected no invalidation on failure, got %d", len(cache.deletedPatterns))
	}
}

func TestCreateMatch_PersistsSnapshotVerbatim(t *testing.T) {
	aID := uuid.New()
	bID := uuid.New()
	repo := mockProfileRepo{byID: map[uuid.UUID]profile.Profile{aID: {UserID: aID}, bID: {UserID: bID}}}
	matches := &mockMatchRepo{}
	uc := NewMatchmakingUsecase(repo, matches, nil, nil)

	snapshot := []match.MutualSkill{
		{Skill: "React", Direction: match.DirectionAToB},
		{Skill: "Python", Direction: match.DirectionBToA},
	}
	created, err := uc.CreateMatch(context.Background(), aID, bID, 0.8, snapshot)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Score != 0.8 {
		t.Fatalf("score not persisted verbatim: %v", created.Score)
	}
	if len(matches.created) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(matches.created))
	}
	stored := matches.created[0]
	if stored.UserAID != aID || stored.UserBID != bID {
		t.Fatalf("participant order not preserved: %s %s", stored.UserAID, stored.UserBID)
	}
	if len(stored.MutualSkills) != 2 || stored.MutualSkills[0] != snapshot[0] || stored.MutualSkills[1] != snapshot[1] {
		t.Fatalf("snapshot altered: %+v", stored.MutualSkills)
	}
}
