package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapError(t *testing.T) {
	cause := errors.New("connection reset")
	err := WrapError("upload", "Post/photo.webp", cause)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause, "cause must stay reachable")
	assert.Contains(t, err.Error(), "upload")
	assert.Contains(t, err.Error(), "Post/photo.webp")
}

func TestBatchError(t *testing.T) {
	cause := errors.New("access denied")

	t.Run("all succeeded", func(t *testing.T) {
		results := []Result{
			{Key: "a", Success: true},
			{Key: "b", Success: true},
		}
		assert.NoError(t, BatchError(ErrUpload, results))
	})

	t.Run("empty batch", func(t *testing.T) {
		assert.NoError(t, BatchError(ErrDelete, nil))
	})

	t.Run("partial failure", func(t *testing.T) {
		results := []Result{
			{Key: "a", Success: true},
			{Key: "b", Success: false, Error: WrapError("upload", "b", cause)},
			{Key: "c", Success: false, Error: WrapError("upload", "c", cause)},
		}

		err := BatchError(ErrUpload, results)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUpload)
		assert.ErrorIs(t, err, cause, "underlying cause must stay reachable")
		assert.Contains(t, err.Error(), "2 of 3")
		assert.Contains(t, err.Error(), "b, c")
	})
}

func TestFailed(t *testing.T) {
	results := []Result{
		{Key: "a", Success: true},
		{Key: "b", Success: false},
		{Key: "c", Success: true},
	}

	failed := Failed(results)
	require.Len(t, failed, 1)
	assert.Equal(t, "b", failed[0].Key)

	assert.Empty(t, Failed(nil))
}
