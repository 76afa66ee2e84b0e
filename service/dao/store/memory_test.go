package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carelane/medreview/service/dao"
)

type entity struct {
	ID   string
	Name string
}

func entityKey(e *entity) string { return e.ID }

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore[string, entity](entityKey)

	assert.ErrorIs(t, store.Save(ctx, nil), dao.ErrNilEntity)

	first := &entity{ID: "e1", Name: "first"}
	second := &entity{ID: "e2", Name: "second"}
	assert.NoError(t, store.Save(ctx, first))
	assert.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx, "e1")
	assert.NoError(t, err)
	assert.Equal(t, first, loaded)

	_, err = store.Load(ctx, "missing")
	assert.ErrorIs(t, err, dao.ErrNotFound)

	list, err := store.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []*entity{first, second}, list, "insertion order preserved")

	assert.NoError(t, store.Delete(ctx, "e1"))
	assert.ErrorIs(t, store.Delete(ctx, "e1"), dao.ErrNotFound)

	list, err = store.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []*entity{second}, list)
}
