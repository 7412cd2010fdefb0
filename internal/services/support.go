package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/repos"
	"github.com/yunkbaza/Softtek/internal/types"
)

type SupportResourceInput struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	URL      string `json:"url"`
}

func (in SupportResourceInput) Validate() map[string]string {
	details := map[string]string{}
	if !types.ResourceCategory(in.Category).Valid() {
		details["category"] = "must be one of therapy, group, wellbeing, education"
	}
	if n := utf8.RuneCountInString(strings.TrimSpace(in.Title)); n < 2 || n > 100 {
		details["title"] = "must be between 2 and 100 characters"
	}
	if !ValidResourceURL(in.URL) {
		details["url"] = "must be a valid http(s) URL"
	}
	return details
}

type SupportService interface {
	List(ctx context.Context) ([]*types.SupportResource, error)
	Create(ctx context.Context, in SupportResourceInput) (*types.SupportResource, error)
}

type supportService struct {
	db           *gorm.DB
	log          *logger.Logger
	resourceRepo repos.SupportResourceRepo
}

func NewSupportService(db *gorm.DB, log *logger.Logger, resourceRepo repos.SupportResourceRepo) SupportService {
	serviceLog := log.With("service", "SupportService")
	return &supportService{db: db, log: serviceLog, resourceRepo: resourceRepo}
}

func (s *supportService) List(ctx context.Context) ([]*types.SupportResource, error) {
	items, err := s.resourceRepo.List(ctx, nil, historyLimit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*types.SupportResource{}
	}
	return items, nil
}

func (s *supportService) Create(ctx context.Context, in SupportResourceInput) (*types.SupportResource, error) {
	resource := &types.SupportResource{
		Category: types.ResourceCategory(in.Category),
		Title:    strings.TrimSpace(in.Title),
		URL:      strings.TrimSpace(in.URL),
	}
	return s.resourceRepo.Create(ctx, nil, resource)
}
