package usecase

import (
	"context"

	"go.uber.org/zap"

	"kikao-backend/internal/dto/response"
	"kikao-backend/pkg/apperrors"
)

type DescriptionService interface {
	// Generate turns a prompt into a listing description via the
	// completion model.
	Generate(ctx context.Context, promptText string) (*response.Description, error)
}

type descriptionService struct {
	generator DescriptionGenerator
	log       *zap.Logger
}

func NewDescriptionService(generator DescriptionGenerator, log *zap.Logger) DescriptionService {
	return &descriptionService{
		generator: generator,
		log:       log.With(zap.String("service", "description")),
	}
}

func (s *descriptionService) Generate(ctx context.Context, promptText string) (*response.Description, error) {
	content, err := s.generator.Complete(ctx, promptText)
	if err != nil {
		s.log.Error("Failed to generate description", zap.Error(err))
		return nil, apperrors.Generic("Failed to generate description", err)
	}

	return &response.Description{
		Role:    "assistant",
		Content: content,
	}, nil
}
