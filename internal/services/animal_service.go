package services

import (
	"context"
	"fmt"

	"protomilk/internal/models"
)

type AnimalStore interface {
	ListByProducer(ctx context.Context, producerID int64) ([]models.Animal, error)
	Create(ctx context.Context, a *models.Animal) error
	Update(ctx context.Context, a *models.Animal) error
	Delete(ctx context.Context, id int64) error
}

type AnimalService struct {
	animalRepo AnimalStore
}

func NewAnimalService(animalRepo AnimalStore) *AnimalService {
	return &AnimalService{animalRepo: animalRepo}
}

type AnimalRequest struct {
	ProducerID  int64   `json:"producer_id" binding:"required,max=2147483647"`
	NameOrID    string  `json:"name_or_id" binding:"required"`
	Breed       *string `json:"breed"`
	Sex         *string `json:"sex"`
	InLactation bool    `json:"in_lactation"`
	IsCovered   bool    `json:"is_covered"`
	MotherID    *int64  `json:"mother_id" binding:"omitempty,max=2147483647"`
	FatherID    *int64  `json:"father_id" binding:"omitempty,max=2147483647"`
}

func (req AnimalRequest) toModel(id int64) *models.Animal {
	return &models.Animal{
		ID:          id,
		ProducerID:  req.ProducerID,
		NameOrID:    req.NameOrID,
		Breed:       req.Breed,
		Sex:         req.Sex,
		InLactation: req.InLactation,
		IsCovered:   req.IsCovered,
		MotherID:    req.MotherID,
		FatherID:    req.FatherID,
	}
}

func (s *AnimalService) ListAnimals(ctx context.Context, producerID int64) ([]models.Animal, error) {
	animals, err := s.animalRepo.ListByProducer(ctx, producerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list animals for producer %d: %w", producerID, err)
	}
	return animals, nil
}

func (s *AnimalService) CreateAnimal(ctx context.Context, req AnimalRequest) (*models.Animal, error) {
	animal := req.toModel(0)
	if err := s.animalRepo.Create(ctx, animal); err != nil {
		return nil, fmt.Errorf("failed to create animal: %w", err)
	}
	return animal, nil
}

func (s *AnimalService) UpdateAnimal(ctx context.Context, id int64, req AnimalRequest) (*models.Animal, error) {
	animal := req.toModel(id)
	if err := s.animalRepo.Update(ctx, animal); err != nil {
		return nil, fmt.Errorf("failed to update animal %d: %w", id, err)
	}
	return animal, nil
}

func (s *AnimalService) DeleteAnimal(ctx context.Context, id int64) error {
	if err := s.animalRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete animal %d: %w", id, err)
	}
	return nil
}
