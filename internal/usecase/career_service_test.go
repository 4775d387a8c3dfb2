package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/footyrecords/club-history/internal/domain/club"
	"github.com/footyrecords/club-history/internal/domain/season"
	clubmock "github.com/footyrecords/club-history/internal/mocks/domain/club"
	seasonmock "github.com/footyrecords/club-history/internal/mocks/domain/season"
	"github.com/stretchr/testify/mock"
)

func TestCareerService_EffectiveCareer_MergesFormerNamesUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clubRepo := clubmock.NewRepository(t)
	entryRepo := seasonmock.NewEntryRepository(t)
	service := NewCareerService(clubRepo, entryRepo)

	current := club.Club{
		ID: "c-new", Name: "FC United",
		FormerNameIDs:  []string{"c-old"},
		PredecessorIDs: []string{"c-pre"},
		LeagueTitles:   2, SeasonsPlayed: 10,
	}
	former := club.Club{
		ID: "c-old", Name: "United Works",
		CurrentNameID: "c-new",
		LeagueTitles:  3, SeasonsPlayed: 20,
	}
	predecessor := club.Club{
		ID: "c-pre", Name: "Railway Athletic",
		SuccessorID:  "c-new",
		LeagueTitles: 7, SeasonsPlayed: 30,
	}

	clubRepo.On("GetByID", ctx, "c-new").Return(current, true, nil).Once()
	clubRepo.On("GetByID", ctx, "c-old").Return(former, true, nil).Once()
	clubRepo.On("GetByID", ctx, "c-pre").Return(predecessor, true, nil).Once()

	entryRepo.On("ListByClub", mock.Anything, "c-new").Return([]season.TableEntry{
		{ClubID: "c-new", Year: "2001", Position: 4},
	}, nil).Once()
	entryRepo.On("ListByClub", mock.Anything, "c-old").Return([]season.TableEntry{
		{ClubID: "c-old", Year: "1980", Position: 1},
	}, nil).Once()
	entryRepo.On("ListByClub", mock.Anything, "c-pre").Return([]season.TableEntry{
		{ClubID: "c-pre", Year: "1955", Position: 2},
	}, nil).Once()

	view, err := service.EffectiveCareer(ctx, "c-new")
	if err != nil {
		t.Fatalf("effective career: %v", err)
	}

	// Former names are the same entity and sum in; predecessors never do.
	if view.Career.LeagueTitles != 5 {
		t.Fatalf("expected 2+3=5 league titles, got %d", view.Career.LeagueTitles)
	}
	if view.Career.SeasonsPlayed != 30 {
		t.Fatalf("expected 10+20=30 seasons, got %d", view.Career.SeasonsPlayed)
	}
	if len(view.Predecessors) != 1 || view.Predecessors[0] != "Railway Athletic" {
		t.Fatalf("unexpected predecessors: %v", view.Predecessors)
	}

	// History carries all three sources, newest season first.
	if len(view.History) != 3 {
		t.Fatalf("expected three history rows, got %d", len(view.History))
	}
	if view.History[0].Year != "2001" || view.History[2].Year != "1955" {
		t.Fatalf("history not sorted newest first: %v", view.History)
	}
}

func TestCareerService_EffectiveCareer_SkipsDanglingLinksUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clubRepo := clubmock.NewRepository(t)
	entryRepo := seasonmock.NewEntryRepository(t)
	service := NewCareerService(clubRepo, entryRepo)

	current := club.Club{
		ID: "c-new", Name: "FC United",
		FormerNameIDs: []string{"c-ghost"},
		LeagueTitles:  2,
	}

	clubRepo.On("GetByID", ctx, "c-new").Return(current, true, nil).Once()
	clubRepo.On("GetByID", ctx, "c-ghost").Return(club.Club{}, false, nil).Once()
	entryRepo.On("ListByClub", mock.Anything, "c-new").Return(nil, nil).Once()

	view, err := service.EffectiveCareer(ctx, "c-new")
	if err != nil {
		t.Fatalf("effective career: %v", err)
	}
	if view.Career.LeagueTitles != 2 {
		t.Fatalf("dangling link must contribute nothing, got %d titles", view.Career.LeagueTitles)
	}
	if len(view.Career.FormerNames) != 0 {
		t.Fatalf("dangling former name listed: %v", view.Career.FormerNames)
	}
}

func TestCareerService_EffectiveCareer_DetectsCycleUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clubRepo := clubmock.NewRepository(t)
	entryRepo := seasonmock.NewEntryRepository(t)
	service := NewCareerService(clubRepo, entryRepo)

	current := club.Club{ID: "c-a", Name: "A", FormerNameIDs: []string{"c-b"}}
	// The linked record claims c-a as ITS former name: both directions at
	// once is a cycle.
	linked := club.Club{ID: "c-b", Name: "B", FormerNameIDs: []string{"c-a"}}

	clubRepo.On("GetByID", ctx, "c-a").Return(current, true, nil).Once()
	clubRepo.On("GetByID", ctx, "c-b").Return(linked, true, nil).Once()

	_, err := service.EffectiveCareer(ctx, "c-a")
	if !errors.Is(err, ErrLineageCycle) {
		t.Fatalf("expected ErrLineageCycle, got %v", err)
	}
	_ = entryRepo // no history reads on failure
}

func TestCareerService_EffectiveCareer_SelfLinkIsCycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clubRepo := clubmock.NewRepository(t)
	entryRepo := seasonmock.NewEntryRepository(t)
	service := NewCareerService(clubRepo, entryRepo)

	current := club.Club{ID: "c-a", Name: "A", PredecessorIDs: []string{"c-a"}}
	clubRepo.On("GetByID", ctx, "c-a").Return(current, true, nil).Once()

	_, err := service.EffectiveCareer(ctx, "c-a")
	if !errors.Is(err, ErrLineageCycle) {
		t.Fatalf("expected ErrLineageCycle, got %v", err)
	}
	_ = entryRepo
}

func TestCareerService_EffectiveCareer_NotFound(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clubRepo := clubmock.NewRepository(t)
	entryRepo := seasonmock.NewEntryRepository(t)
	service := NewCareerService(clubRepo, entryRepo)

	clubRepo.On("GetByID", ctx, "missing").Return(club.Club{}, false, nil).Once()

	_, err := service.EffectiveCareer(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	_ = entryRepo
}
