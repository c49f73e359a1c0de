package repository

import (
	"context"
	"fmt"
	"sync"

	"activity-signup-service/internal/model"
)

// entry хранит занятие вместе с собственным мьютексом,
// чтобы проверка и изменение списка участников были атомарными в пределах занятия.
type entry struct {
	mu       sync.Mutex
	activity model.Activity
}

// runLocked выполняет fn над занятием name под его мьютексом
// и возвращает снимок занятия после fn.
// Если fn вернула ошибку, изменения не применяются.
func (d *Directory) runLocked(ctx context.Context, name string, fn func(a *model.Activity) error) (model.Activity, error) {
	if err := ctx.Err(); err != nil {
		return model.Activity{}, fmt.Errorf("run locked: %w", err)
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	e, ok := d.entries[name]
	if !ok {
		return model.Activity{}, ErrActivityNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	working := e.activity.Clone()
	if err := fn(&working); err != nil {
		return model.Activity{}, err
	}
	e.activity = working

	return working.Clone(), nil
}
