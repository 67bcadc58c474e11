package memory

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
)

type Entity interface {
	GetID() string
}

// Repository is an in-process store that remembers insertion order. With a
// capacity set, saving past it evicts the oldest entity.
type Repository[T Entity] struct {
	data     map[string]T
	order    []string
	capacity int
	mu       sync.RWMutex
}

type Option func(*options)

type options struct {
	capacity int
}

func WithCapacity(capacity int) Option {
	return func(o *options) {
		o.capacity = capacity
	}
}

func New[T Entity](opts ...Option) *Repository[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Repository[T]{
		data:     make(map[string]T),
		order:    make([]string, 0),
		capacity: o.capacity,
	}
}

func (r *Repository[T]) Save(_ context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, exists := r.data[id]; exists {
		return ErrAlreadyExists
	}

	r.data[id] = entity
	r.order = append(r.order, id)

	if r.capacity > 0 && len(r.order) > r.capacity {
		evicted := r.order[0]
		r.order = r.order[1:]
		delete(r.data, evicted)
	}

	return nil
}

func (r *Repository[T]) GetByID(_ context.Context, id string) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	entity, exists := r.data[id]
	if !exists {
		return zero, ErrNotFound
	}

	return entity, nil
}

func (r *Repository[T]) Update(_ context.Context, entity T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := entity.GetID()
	if _, exists := r.data[id]; !exists {
		return ErrNotFound
	}

	r.data[id] = entity
	return nil
}

func (r *Repository[T]) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.data[id]; !exists {
		return ErrNotFound
	}

	delete(r.data, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns entities oldest first.
func (r *Repository[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entities := make([]T, 0, len(r.order))
	for _, id := range r.order {
		entities = append(entities, r.data[id])
	}

	return entities, nil
}

func (r *Repository[T]) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.data), nil
}
