package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"protomilk/internal/models"
	"protomilk/internal/repositories"
)

type stubProducers struct {
	err     error
	updated *models.Producer
}

func (s *stubProducers) List(context.Context) ([]models.Producer, error) { return nil, s.err }

func (s *stubProducers) GetByID(context.Context, int64) (*models.Producer, error) {
	return nil, s.err
}

func (s *stubProducers) Create(_ context.Context, p *models.Producer) error {
	p.ID = 1
	return s.err
}

func (s *stubProducers) Update(_ context.Context, p *models.Producer) error {
	s.updated = p
	return s.err
}

func (s *stubProducers) Delete(context.Context, int64) error { return s.err }

func TestUpdateProducerCarriesIDAndAllFields(t *testing.T) {
	store := &stubProducers{}
	svc := NewProducerService(store)
	phone := "555-0100"

	got, err := svc.UpdateProducer(context.Background(), 7, ProducerRequest{Name: "Farm A", Phone: &phone})
	if err != nil {
		t.Fatalf("UpdateProducer: %v", err)
	}
	if store.updated.ID != 7 || store.updated.Name != "Farm A" || store.updated.Property != nil || *store.updated.Phone != phone {
		t.Fatalf("unexpected row sent to store: %+v", store.updated)
	}
	if got != store.updated {
		t.Fatalf("expected the stored row to be returned")
	}
}

func TestProducerServiceKeepsNotFoundDetectable(t *testing.T) {
	svc := NewProducerService(&stubProducers{err: repositories.ErrNotFound})

	_, err := svc.UpdateProducer(context.Background(), 7, ProducerRequest{Name: "Farm A"})

	if !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("expected wrapped ErrNotFound, got %v", err)
	}
}

func TestProducerServiceWrapsStoreErrors(t *testing.T) {
	storeErr := errors.New("connection reset by peer")
	svc := NewProducerService(&stubProducers{err: storeErr})

	if _, err := svc.ListProducers(context.Background()); !errors.Is(err, storeErr) || !strings.Contains(err.Error(), "list producers") {
		t.Fatalf("unexpected list error: %v", err)
	}
	if _, err := svc.CreateProducer(context.Background(), ProducerRequest{Name: "Farm A"}); !errors.Is(err, storeErr) {
		t.Fatalf("unexpected create error: %v", err)
	}
	if err := svc.DeleteProducer(context.Background(), 1); !errors.Is(err, storeErr) {
		t.Fatalf("unexpected delete error: %v", err)
	}
}
