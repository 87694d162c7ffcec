// Package sqlite provides SQLite implementations of domain repositories.
//
// The lazy wrappers implement the same repository interfaces as their eager
// counterparts and only touch the database on first use, so CLI commands and
// sessions that never persist a layout do not open it.
package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/gridterm/internal/application/port"
	"github.com/bnema/gridterm/internal/domain/entity"
	"github.com/bnema/gridterm/internal/domain/repository"
)

// LazyLayoutRepository wraps a layout repository with lazy database initialization.
type LazyLayoutRepository struct {
	provider port.DatabaseProvider
	repo     repository.LayoutRepository
	once     sync.Once
	initErr  error
}

// NewLazyLayoutRepository creates a lazy-loading layout repository.
func NewLazyLayoutRepository(provider port.DatabaseProvider) repository.LayoutRepository {
	return &LazyLayoutRepository{provider: provider}
}

func (r *LazyLayoutRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewLayoutRepository(db)
	})
	return r.initErr
}

func (r *LazyLayoutRepository) Save(ctx context.Context, snap *entity.LayoutSnapshot) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, snap)
}

func (r *LazyLayoutRepository) FindByName(ctx context.Context, name string) (*entity.LayoutSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.FindByName(ctx, name)
}

func (r *LazyLayoutRepository) List(ctx context.Context) ([]*entity.LayoutSnapshot, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.List(ctx)
}

func (r *LazyLayoutRepository) Delete(ctx context.Context, name string) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, name)
}
