package repository

import (
	"context"
	"fmt"
	"sync"

	"activity-signup-service/internal/model"
)

// Directory хранит каталог занятий в памяти процесса.
// Набор занятий фиксирован после создания, меняются только списки участников.
type Directory struct {
	mu      sync.RWMutex
	seed    model.Catalog
	entries map[string]*entry
}

// NewDirectory создаёт каталог из переданных данных.
// Seed копируется, поэтому вызывающий может свободно менять исходную карту.
func NewDirectory(seed model.Catalog) *Directory {
	d := &Directory{seed: seed.Clone()}
	d.entries = buildEntries(d.seed)
	return d
}

// NewSeededDirectory создаёт каталог со стандартным набором занятий.
func NewSeededDirectory() *Directory {
	return NewDirectory(SeedCatalog())
}

func buildEntries(seed model.Catalog) map[string]*entry {
	entries := make(map[string]*entry, len(seed))
	for name, a := range seed {
		a = a.Clone()
		if a.Participants == nil {
			a.Participants = []string{}
		}
		entries[name] = &entry{activity: a}
	}
	return entries
}

// List возвращает копию всего каталога вместе с участниками.
func (d *Directory) List(ctx context.Context) (model.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make(model.Catalog, len(d.entries))
	for name, e := range d.entries {
		e.mu.Lock()
		out[name] = e.activity.Clone()
		e.mu.Unlock()
	}
	return out, nil
}

// AddParticipant записывает email на занятие, сохраняя порядок записи.
// Вместимость не проверяется.
func (d *Directory) AddParticipant(ctx context.Context, name, email string) (model.Activity, error) {
	return d.runLocked(ctx, name, func(a *model.Activity) error {
		if a.HasParticipant(email) {
			return ErrAlreadyRegistered
		}
		a.Participants = append(a.Participants, email)
		return nil
	})
}

// RemoveParticipant выписывает email из занятия.
func (d *Directory) RemoveParticipant(ctx context.Context, name, email string) (model.Activity, error) {
	return d.runLocked(ctx, name, func(a *model.Activity) error {
		if !a.HasParticipant(email) {
			return ErrNotRegistered
		}
		*a = a.WithoutParticipant(email)
		return nil
	})
}

// Reset возвращает каталог к исходному состоянию.
// Используется только тестовой фикстурой, HTTP-ручки для сброса нет.
func (d *Directory) Reset() {
	entries := buildEntries(d.seed)

	d.mu.Lock()
	d.entries = entries
	d.mu.Unlock()
}
