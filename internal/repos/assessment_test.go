package repos

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/types"
)

var repoDBSeq atomic.Int64

func newRepoTestDB(t *testing.T) (*gorm.DB, *logger.Logger) {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%d?mode=memory&cache=shared", repoDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.Assessment{}, &types.SupportResource{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db, &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func TestAssessmentsReturnNewestFirstWithCap(t *testing.T) {
	t.Parallel()
	db, log := newRepoTestDB(t)
	repo := NewAssessmentRepo(db, log)
	ctx := context.Background()

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, nil, &types.Assessment{
			SessionID: "abcd1234",
			Type:      types.AssessmentAnxiety,
			Score:     10 * i,
			Severity:  types.SeverityFromScore(10 * i),
			Answers:   []byte("{}"),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	got, err := repo.GetBySessionID(ctx, nil, "abcd1234", 2)
	if err != nil {
		t.Fatalf("get by session: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("limit not applied: got=%d want=2", len(got))
	}
	if !got[0].CreatedAt.After(got[1].CreatedAt) {
		t.Fatalf("results not newest-first: %v then %v", got[0].CreatedAt, got[1].CreatedAt)
	}
}

func TestAssessmentCreateAssignsServerFields(t *testing.T) {
	t.Parallel()
	db, log := newRepoTestDB(t)
	repo := NewAssessmentRepo(db, log)

	created, err := repo.Create(context.Background(), nil, &types.Assessment{
		SessionID: "abcd1234",
		Type:      types.AssessmentBurnout,
		Score:     5,
		Severity:  types.SeverityNeutral,
		Answers:   []byte("{}"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("id was not assigned")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("createdAt was not assigned")
	}
}

func TestSupportResourcesOrderedByTitle(t *testing.T) {
	t.Parallel()
	db, log := newRepoTestDB(t)
	repo := NewSupportResourceRepo(db, log)
	ctx := context.Background()

	for _, title := range []string{"Zen garden", "Anxiety workbook", "Mindful minutes"} {
		_, err := repo.Create(ctx, nil, &types.SupportResource{
			Category: types.CategoryWellbeing,
			Title:    title,
			URL:      "https://example.org",
		})
		if err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	got, err := repo.List(ctx, nil, 200)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("unexpected count: got=%d want=3", len(got))
	}
	if got[0].Title != "Anxiety workbook" || got[2].Title != "Zen garden" {
		t.Fatalf("not ordered by title: %q, %q, %q", got[0].Title, got[1].Title, got[2].Title)
	}
}
