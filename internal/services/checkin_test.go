package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/repos"
	"github.com/yunkbaza/Softtek/internal/types"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:checkin_svc_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&types.Assessment{},
		&types.MoodCheckin{},
		&types.SupportResource{},
		&types.Event{},
		&types.EmotionRecord{},
		&types.RiskAnswer{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func newCheckinFixture(t *testing.T) (CheckinService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	log := testLogger()
	audit := NewAuditService(db, log, repos.NewEventRepo(db, log))
	svc := NewCheckinService(db, log, repos.NewAssessmentRepo(db, log), repos.NewMoodCheckinRepo(db, log), audit)
	return svc, db
}

func intPtr(v int) *int { return &v }

func TestSubmitAssessmentDerivesSeverityAndAudits(t *testing.T) {
	t.Parallel()
	svc, db := newCheckinFixture(t)

	created, err := svc.SubmitAssessment(context.Background(), AssessmentInput{
		SessionID: "abcd1234",
		Type:      "anxiety",
		Score:     intPtr(80),
		Answers:   map[string]any{"q1": 4},
	})
	if err != nil {
		t.Fatalf("submit assessment: %v", err)
	}
	if created.ID.String() == "" || created.Severity != types.SeveritySevere {
		t.Fatalf("unexpected record: id=%q severity=%q", created.ID, created.Severity)
	}

	var events []types.Event
	if err := db.Where("action = ?", "assessment_submitted").Find(&events).Error; err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("unexpected audit event count: got=%d want=1", len(events))
	}
	if events[0].SessionID != "abcd1234" {
		t.Fatalf("unexpected audit session: got=%q want=%q", events[0].SessionID, "abcd1234")
	}
}

func TestSubmitAssessmentTwiceCreatesDistinctRecords(t *testing.T) {
	t.Parallel()
	svc, _ := newCheckinFixture(t)

	in := AssessmentInput{SessionID: "abcd1234", Type: "burnout", Score: intPtr(30)}
	first, err := svc.SubmitAssessment(context.Background(), in)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, err := svc.SubmitAssessment(context.Background(), in)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("resubmission must create a distinct record, both got id=%s", first.ID)
	}
}

type failingEventRepo struct{}

func (failingEventRepo) Create(context.Context, *gorm.DB, *types.Event) (*types.Event, error) {
	return nil, errors.New("event store unavailable")
}

func TestAuditFailureDoesNotFailPrimaryWrite(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	log := testLogger()
	audit := NewAuditService(db, log, failingEventRepo{})
	svc := NewCheckinService(db, log, repos.NewAssessmentRepo(db, log), repos.NewMoodCheckinRepo(db, log), audit)

	created, err := svc.SubmitMood(context.Background(), MoodCheckinInput{
		SessionID: "abcd1234",
		Mood:      "good",
	})
	if err != nil {
		t.Fatalf("primary write must survive an audit failure: %v", err)
	}

	var count int64
	if err := db.Model(&types.MoodCheckin{}).Count(&count).Error; err != nil {
		t.Fatalf("count check-ins: %v", err)
	}
	if count != 1 {
		t.Fatalf("unexpected check-in count: got=%d want=1", count)
	}
	if created.ID == uuid.Nil {
		t.Fatalf("id was not assigned")
	}
}

func TestHistoryReturnsBothCollections(t *testing.T) {
	t.Parallel()
	svc, _ := newCheckinFixture(t)
	ctx := context.Background()

	if _, err := svc.SubmitAssessment(ctx, AssessmentInput{SessionID: "session-one", Type: "depression", Score: intPtr(10)}); err != nil {
		t.Fatalf("submit assessment: %v", err)
	}
	mood, err := svc.SubmitMood(ctx, MoodCheckinInput{SessionID: "session-one", Mood: "good"})
	if err != nil {
		t.Fatalf("submit mood: %v", err)
	}
	if _, err := svc.SubmitMood(ctx, MoodCheckinInput{SessionID: "other-session", Mood: "bad"}); err != nil {
		t.Fatalf("submit other mood: %v", err)
	}

	history, err := svc.History(ctx, "session-one")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history.Assessments) != 1 {
		t.Fatalf("unexpected assessment count: got=%d want=1", len(history.Assessments))
	}
	if len(history.Mood) != 1 {
		t.Fatalf("unexpected mood count: got=%d want=1", len(history.Mood))
	}
	if history.Mood[0].ID != mood.ID {
		t.Fatalf("history missing the submitted check-in: got=%s want=%s", history.Mood[0].ID, mood.ID)
	}
}

func TestHistoryEmptySessionIsEmptyNotNil(t *testing.T) {
	t.Parallel()
	svc, _ := newCheckinFixture(t)

	history, err := svc.History(context.Background(), "never-seen-session")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if history.Assessments == nil || history.Mood == nil {
		t.Fatalf("history slices must be non-nil: %+v", history)
	}
	if len(history.Assessments) != 0 || len(history.Mood) != 0 {
		t.Fatalf("expected empty history, got %+v", history)
	}
}
