package services

import (
	"context"
	"fmt"

	"protomilk/internal/models"
)

type ProducerStore interface {
	List(ctx context.Context) ([]models.Producer, error)
	GetByID(ctx context.Context, id int64) (*models.Producer, error)
	Create(ctx context.Context, p *models.Producer) error
	Update(ctx context.Context, p *models.Producer) error
	Delete(ctx context.Context, id int64) error
}

type ProducerService struct {
	producerRepo ProducerStore
}

func NewProducerService(producerRepo ProducerStore) *ProducerService {
	return &ProducerService{producerRepo: producerRepo}
}

type ProducerRequest struct {
	Name     string  `json:"name" binding:"required"`
	Property *string `json:"property"`
	Phone    *string `json:"phone"`
}

func (req ProducerRequest) toModel(id int64) *models.Producer {
	return &models.Producer{
		ID:       id,
		Name:     req.Name,
		Property: req.Property,
		Phone:    req.Phone,
	}
}

func (s *ProducerService) ListProducers(ctx context.Context) ([]models.Producer, error) {
	producers, err := s.producerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list producers: %w", err)
	}
	return producers, nil
}

func (s *ProducerService) GetProducer(ctx context.Context, id int64) (*models.Producer, error) {
	producer, err := s.producerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get producer %d: %w", id, err)
	}
	return producer, nil
}

func (s *ProducerService) CreateProducer(ctx context.Context, req ProducerRequest) (*models.Producer, error) {
	producer := req.toModel(0)
	if err := s.producerRepo.Create(ctx, producer); err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}
	return producer, nil
}

// UpdateProducer overwrites every mutable field of the producer with id.
func (s *ProducerService) UpdateProducer(ctx context.Context, id int64, req ProducerRequest) (*models.Producer, error) {
	producer := req.toModel(id)
	if err := s.producerRepo.Update(ctx, producer); err != nil {
		return nil, fmt.Errorf("failed to update producer %d: %w", id, err)
	}
	return producer, nil
}

func (s *ProducerService) DeleteProducer(ctx context.Context, id int64) error {
	if err := s.producerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete producer %d: %w", id, err)
	}
	return nil
}
