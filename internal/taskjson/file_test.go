package taskjson

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tracker/internal/core/task"
)

func TestSaveLoad(t *testing.T) {
	t.Run("round trip through a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		doc := Document{Version: Version, NextID: 2, Tasks: []task.Task{fixedTask(1, "Buy milk")}}

		require.NoError(t, Save(path, doc))

		got, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 2, got.NextID)
		require.Len(t, got.Tasks, 1)
		assert.Equal(t, "Buy milk", got.Tasks[0].Title)
	})

	t.Run("load missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("save into missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "no", "such", "dir", "tasks.json")
		err := Save(path, Document{Version: Version, NextID: 1})
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("load propagates decode errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version": "1.0", "next_id": 1}`), 0o644))

		_, err := Load(path)
		assert.ErrorIs(t, err, ErrInvalidFormat)
	})
}
