package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yunkbaza/Softtek/internal/platform/apierr"
	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/repos"
	"github.com/yunkbaza/Softtek/internal/types"
)

// historyLimit caps each collection scan on the history read path.
const historyLimit = 200

type AssessmentInput struct {
	SessionID string         `json:"sessionId"`
	Type      string         `json:"type"`
	Score     *int           `json:"score"`
	Answers   map[string]any `json:"answers"`
}

// Validate returns field -> message; an empty map means the payload is
// accepted. Validation is total and side-effect free.
func (in AssessmentInput) Validate() map[string]string {
	details := map[string]string{}
	if !ValidSessionID(in.SessionID) {
		details["sessionId"] = "must be a string of 8 to 128 characters"
	}
	if !types.AssessmentType(in.Type).Valid() {
		details["type"] = "must be one of anxiety, depression, burnout"
	}
	if in.Score == nil {
		details["score"] = "is required"
	} else if *in.Score < 0 || *in.Score > 100 {
		details["score"] = "must be an integer between 0 and 100"
	}
	return details
}

type MoodCheckinInput struct {
	SessionID string `json:"sessionId"`
	Mood      string `json:"mood"`
	Notes     string `json:"notes"`
}

func (in MoodCheckinInput) Validate() map[string]string {
	details := map[string]string{}
	if !ValidSessionID(in.SessionID) {
		details["sessionId"] = "must be a string of 8 to 128 characters"
	}
	if !types.Mood(in.Mood).Valid() {
		details["mood"] = "must be one of very_bad, bad, neutral, good, very_good"
	}
	if utf8.RuneCountInString(in.Notes) > 500 {
		details["notes"] = "must be at most 500 characters"
	}
	return details
}

type History struct {
	Assessments []*types.Assessment  `json:"assessments"`
	Mood        []*types.MoodCheckin `json:"mood"`
}

type CheckinService interface {
	SubmitAssessment(ctx context.Context, in AssessmentInput) (*types.Assessment, error)
	SubmitMood(ctx context.Context, in MoodCheckinInput) (*types.MoodCheckin, error)
	History(ctx context.Context, sessionID string) (*History, error)
}

type checkinService struct {
	db             *gorm.DB
	log            *logger.Logger
	assessmentRepo repos.AssessmentRepo
	moodRepo       repos.MoodCheckinRepo
	audit          AuditService
}

func NewCheckinService(db *gorm.DB, log *logger.Logger, assessmentRepo repos.AssessmentRepo, moodRepo repos.MoodCheckinRepo, audit AuditService) CheckinService {
	serviceLog := log.With("service", "CheckinService")
	return &checkinService{
		db:             db,
		log:            serviceLog,
		assessmentRepo: assessmentRepo,
		moodRepo:       moodRepo,
		audit:          audit,
	}
}

func (s *checkinService) SubmitAssessment(ctx context.Context, in AssessmentInput) (*types.Assessment, error) {
	if in.Score == nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_payload", errors.New("score is required"))
	}
	answers := in.Answers
	if answers == nil {
		answers = map[string]any{}
	}
	rawAnswers, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("marshal answers: %w", err)
	}

	assessment := &types.Assessment{
		SessionID: in.SessionID,
		Type:      types.AssessmentType(in.Type),
		Score:     *in.Score,
		Severity:  types.SeverityFromScore(*in.Score),
		Answers:   datatypes.JSON(rawAnswers),
	}
	created, err := s.assessmentRepo.Create(ctx, nil, assessment)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, in.SessionID, "assessment_submitted", map[string]any{
		"id":    created.ID.String(),
		"type":  in.Type,
		"score": *in.Score,
	})
	return created, nil
}

func (s *checkinService) SubmitMood(ctx context.Context, in MoodCheckinInput) (*types.MoodCheckin, error) {
	checkin := &types.MoodCheckin{
		SessionID: in.SessionID,
		Mood:      types.Mood(in.Mood),
		Notes:     in.Notes,
	}
	created, err := s.moodRepo.Create(ctx, nil, checkin)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, in.SessionID, "mood_checkin_submitted", map[string]any{
		"id":   created.ID.String(),
		"mood": in.Mood,
	})
	return created, nil
}

// History queries both collections concurrently; the two scans are
// independent and neither orders against the other.
func (s *checkinService) History(ctx context.Context, sessionID string) (*History, error) {
	var (
		assessments []*types.Assessment
		mood        []*types.MoodCheckin
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		assessments, err = s.assessmentRepo.GetBySessionID(gctx, nil, sessionID, historyLimit)
		return err
	})
	g.Go(func() error {
		var err error
		mood, err = s.moodRepo.GetBySessionID(gctx, nil, sessionID, historyLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if assessments == nil {
		assessments = []*types.Assessment{}
	}
	if mood == nil {
		mood = []*types.MoodCheckin{}
	}

	s.audit.Record(ctx, sessionID, "history_fetched", map[string]any{
		"assessments": len(assessments),
		"mood":        len(mood),
	})
	return &History{Assessments: assessments, Mood: mood}, nil
}
