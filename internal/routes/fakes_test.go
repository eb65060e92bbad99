package routes

import (
	"context"
	"sort"
	"sync"

	"protomilk/internal/models"
	"protomilk/internal/repositories"
)

// table is an in-memory stand-in for one Postgres table. err, when set, is
// returned from every call to simulate a store outage.
type table[T any] struct {
	mu   sync.Mutex
	rows map[int64]T
	next int64
	err  error
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

func (t *table[T]) all() []T {
	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

func (t *table[T]) get(id int64) (T, error) {
	row, ok := t.rows[id]
	if !ok {
		return row, repositories.ErrNotFound
	}
	return row, nil
}

type fakeProducers struct{ *table[models.Producer] }

func (f fakeProducers) List(context.Context) ([]models.Producer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := f.all()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f fakeProducers) GetByID(_ context.Context, id int64) (*models.Producer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p, err := f.get(id)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (f fakeProducers) Create(_ context.Context, p *models.Producer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.next++
	p.ID = f.next
	f.rows[p.ID] = *p
	return nil
}

func (f fakeProducers) Update(_ context.Context, p *models.Producer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, err := f.get(p.ID); err != nil {
		return err
	}
	f.rows[p.ID] = *p
	return nil
}

func (f fakeProducers) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.rows, id)
	return nil
}

type fakeAnimals struct{ *table[models.Animal] }

func (f fakeAnimals) ListByProducer(_ context.Context, producerID int64) ([]models.Animal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Animal{}
	for _, a := range f.all() {
		if a.ProducerID == producerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f fakeAnimals) Create(_ context.Context, a *models.Animal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.next++
	a.ID = f.next
	f.rows[a.ID] = *a
	return nil
}

func (f fakeAnimals) Update(_ context.Context, a *models.Animal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, err := f.get(a.ID); err != nil {
		return err
	}
	f.rows[a.ID] = *a
	return nil
}

func (f fakeAnimals) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.rows, id)
	return nil
}

type fakeMedications struct{ *table[models.Medication] }

func (f fakeMedications) List(context.Context) ([]models.Medication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.all(), nil
}

func (f fakeMedications) GetByID(_ context.Context, id int64) (*models.Medication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	m, err := f.get(id)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (f fakeMedications) Create(_ context.Context, m *models.Medication) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.next++
	m.ID = f.next
	f.rows[m.ID] = *m
	return nil
}

func (f fakeMedications) Update(_ context.Context, m *models.Medication) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, err := f.get(m.ID); err != nil {
		return err
	}
	f.rows[m.ID] = *m
	return nil
}

func (f fakeMedications) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.rows, id)
	return nil
}

type fakeTreatments struct {
	*table[models.Treatment]
	lastFilter **int64
}

func (f fakeTreatments) List(_ context.Context, animalID *int64) ([]models.Treatment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	*f.lastFilter = animalID
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Treatment{}
	for _, t := range f.all() {
		if animalID == nil || t.AnimalID == *animalID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f fakeTreatments) GetByID(_ context.Context, id int64) (*models.Treatment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t, err := f.get(id)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (f fakeTreatments) Create(_ context.Context, t *models.Treatment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.next++
	t.ID = f.next
	f.rows[t.ID] = *t
	return nil
}

func (f fakeTreatments) Delete(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	delete(f.rows, id)
	return nil
}
