package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tracker/internal/core/task"
)

func matrixFixture(t *testing.T) (*TaskStore, *Matrix) {
	t.Helper()

	store := NewTaskStore()
	idWork1, err := store.Add("Ship release", "")
	require.NoError(t, err)
	idWork2, err := store.Add("Review PR", "")
	require.NoError(t, err)
	idHome, err := store.Add("Buy milk", "")
	require.NoError(t, err)

	require.NoError(t, store.UpdateCategory(idWork1, "Work"))
	require.NoError(t, store.UpdatePriority(idWork1, 8))
	require.NoError(t, store.UpdateCategory(idWork2, "Work"))
	require.NoError(t, store.UpdatePriority(idWork2, 8))
	require.NoError(t, store.UpdateCategory(idHome, "Home"))

	m := NewMatrix()
	m.RebuildFrom(store.Snapshot())
	return store, m
}

func TestMatrixLookup(t *testing.T) {
	_, m := matrixFixture(t)

	t.Run("hit returns bucket contents", func(t *testing.T) {
		bucket := m.Lookup("Work", 8)
		require.Len(t, bucket, 2)
		assert.Equal(t, "Ship release", bucket[0].Title)
		assert.Equal(t, "Review PR", bucket[1].Title)
	})

	t.Run("miss returns nil without creating entries", func(t *testing.T) {
		assert.Nil(t, m.Lookup("Work", 3))
		assert.Nil(t, m.Lookup("Errands", 0))

		assert.False(t, m.HasCategory("Errands"))
		assert.Equal(t, []int{8}, m.Priorities("Work"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		bucket := m.Lookup("Work", 8)
		bucket[0].Title = "Hijacked"
		assert.Equal(t, "Ship release", m.Lookup("Work", 8)[0].Title)
	})
}

func TestMatrixDefaultBucket(t *testing.T) {
	// A store-created task lands in "General"; only an explicitly empty
	// category falls into the matrix's own "Default" bucket. The two
	// defaults never merge.
	store := NewTaskStore()
	idGeneral, err := store.Add("Uncategorized", "")
	require.NoError(t, err)
	idBlank, err := store.Add("Blanked", "")
	require.NoError(t, err)
	require.NoError(t, store.UpdateCategory(idBlank, ""))

	m := NewMatrix()
	m.RebuildFrom(store.Snapshot())

	general := m.Lookup(task.DefaultCategory, 0)
	require.Len(t, general, 1)
	assert.Equal(t, idGeneral, general[0].ID)

	blank := m.Lookup(MatrixDefaultCategory, 0)
	require.Len(t, blank, 1)
	assert.Equal(t, idBlank, blank[0].ID)

	assert.Equal(t, []string{MatrixDefaultCategory, task.DefaultCategory}, m.Categories())
}

func TestMatrixRemove(t *testing.T) {
	_, m := matrixFixture(t)

	require.True(t, m.Remove(1))
	assert.False(t, m.Remove(1))

	bucket := m.Lookup("Work", 8)
	require.Len(t, bucket, 1)
	assert.Equal(t, "Review PR", bucket[0].Title)
	assert.Equal(t, 2, m.TotalCount())
}

func TestMatrixKeys(t *testing.T) {
	_, m := matrixFixture(t)

	assert.Equal(t, []string{"Home", "Work"}, m.Categories())
	assert.Equal(t, []int{8}, m.Priorities("Work"))
	assert.Equal(t, []int{0}, m.Priorities("Home"))
	assert.Nil(t, m.Priorities("Errands"))

	assert.Equal(t, 2, m.Count("Work", 8))
	assert.Equal(t, 0, m.Count("Work", 1))
	assert.Equal(t, 3, m.TotalCount())
}

func TestMatrixRebuild(t *testing.T) {
	t.Run("rebuild replaces previous contents", func(t *testing.T) {
		store, m := matrixFixture(t)

		require.NoError(t, store.Remove(1))
		require.NoError(t, store.Remove(2))
		m.RebuildFrom(store.Snapshot())

		assert.Equal(t, []string{"Home"}, m.Categories())
		assert.Equal(t, 1, m.TotalCount())
	})

	t.Run("matrix does not observe later store mutations", func(t *testing.T) {
		store, m := matrixFixture(t)

		require.NoError(t, store.UpdatePriority(1, 2))
		require.NoError(t, store.Remove(3))

		assert.Equal(t, 2, m.Count("Work", 8))
		assert.Equal(t, 1, m.Count("Home", 0))
	})
}

func TestMatrixClear(t *testing.T) {
	_, m := matrixFixture(t)

	m.Clear()
	assert.Empty(t, m.Categories())
	assert.Equal(t, 0, m.TotalCount())
	assert.Nil(t, m.Lookup("Work", 8))
}
