package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/yunkbaza/Softtek/internal/platform/apierr"
	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/repos"
	"github.com/yunkbaza/Softtek/internal/types"
)

// LegacyService serves the route set older app builds still call. The legacy
// payloads carry their own field names and land in their own collections;
// they are deliberately not merged into the check-in schema.

type EmotionInput struct {
	Emotion   string    `json:"emotion"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
}

func (in EmotionInput) Validate() map[string]string {
	details := map[string]string{}
	if strings.TrimSpace(in.Emotion) == "" {
		details["emotion"] = "is required"
	}
	if strings.TrimSpace(in.UserID) == "" {
		details["userId"] = "is required"
	}
	return details
}

type RiskAnswerInput struct {
	Question  string    `json:"question"`
	Answer    *int      `json:"answer"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
}

func (in RiskAnswerInput) Validate() map[string]string {
	details := map[string]string{}
	if strings.TrimSpace(in.Question) == "" {
		details["question"] = "is required"
	}
	if in.Answer == nil {
		details["answer"] = "is required"
	} else if *in.Answer < 1 || *in.Answer > 5 {
		details["answer"] = "must be an integer between 1 and 5"
	}
	if strings.TrimSpace(in.UserID) == "" {
		details["userId"] = "is required"
	}
	return details
}

type LegacyService interface {
	RecordEmotion(ctx context.Context, in EmotionInput) (*types.EmotionRecord, error)
	ListEmotions(ctx context.Context) ([]*types.EmotionRecord, error)
	RecordRisk(ctx context.Context, in RiskAnswerInput) (*types.RiskAnswer, error)
}

type legacyService struct {
	db          *gorm.DB
	log         *logger.Logger
	emotionRepo repos.EmotionRecordRepo
	riskRepo    repos.RiskAnswerRepo
}

func NewLegacyService(db *gorm.DB, log *logger.Logger, emotionRepo repos.EmotionRecordRepo, riskRepo repos.RiskAnswerRepo) LegacyService {
	serviceLog := log.With("service", "LegacyService")
	return &legacyService{db: db, log: serviceLog, emotionRepo: emotionRepo, riskRepo: riskRepo}
}

func (s *legacyService) RecordEmotion(ctx context.Context, in EmotionInput) (*types.EmotionRecord, error) {
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	record := &types.EmotionRecord{
		Emotion:   strings.TrimSpace(in.Emotion),
		UserID:    strings.TrimSpace(in.UserID),
		Timestamp: ts,
	}
	return s.emotionRepo.Create(ctx, nil, record)
}

func (s *legacyService) ListEmotions(ctx context.Context) ([]*types.EmotionRecord, error) {
	records, err := s.emotionRepo.List(ctx, nil, historyLimit)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*types.EmotionRecord{}
	}
	return records, nil
}

func (s *legacyService) RecordRisk(ctx context.Context, in RiskAnswerInput) (*types.RiskAnswer, error) {
	if in.Answer == nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_payload", errors.New("answer is required"))
	}
	ts := in.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	answer := &types.RiskAnswer{
		Question:  strings.TrimSpace(in.Question),
		Answer:    *in.Answer,
		UserID:    strings.TrimSpace(in.UserID),
		Timestamp: ts,
	}
	return s.riskRepo.Create(ctx, nil, answer)
}
