package submission

import (
	"context"
	"sync"

	"QuickTech-Backend/src/models"
)

// MemoryStore keeps submissions in a map indexed by id plus an insertion-ordered id list.
// Its contents live as long as the process.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]*models.Submission
	order  []int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		byID:   make(map[int64]*models.Submission),
	}
}

func (m *MemoryStore) Create(_ context.Context, in models.NewSubmission) (models.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub := models.Submission{
		ID:          m.nextID,
		Type:        in.Type,
		Data:        in.Data,
		CreatedAt:   in.CreatedAt,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Viewed:      false,
	}
	sub = sub.Clone()
	m.nextID++

	m.byID[sub.ID] = &sub
	m.order = append(m.order, sub.ID)
	return sub.Clone(), nil
}

func (m *MemoryStore) List(_ context.Context) ([]models.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Submission, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.byID[id].Clone())
	}
	return out, nil
}

func (m *MemoryStore) GetByID(_ context.Context, id int64) (models.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sub, ok := m.byID[id]
	if !ok {
		return models.Submission{}, ErrNotFound
	}
	return sub.Clone(), nil
}

func (m *MemoryStore) MarkViewed(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub, ok := m.byID[id]
	if !ok {
		return ErrNotFound
	}
	sub.Viewed = true
	return nil
}
