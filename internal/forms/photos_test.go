package forms

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	apierrors "home4paws-cli/internal/common/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhotoSet_Cap(t *testing.T) {
	set := NewPhotoSet(nil)
	for i := 0; i < MaxPhotos; i++ {
		require.NoError(t, set.AddBytes(fmt.Sprintf("dog-%d.jpg", i), []byte{0xff, 0xd8}))
	}
	require.Equal(t, MaxPhotos, set.Count())

	err := set.AddBytes("one-too-many.jpg", []byte{0xff, 0xd8})
	require.Error(t, err)
	apiErr, ok := apierrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, apierrors.ErrCodePhotoLimit, apiErr.Code)
	assert.Equal(t, "Maximum 5 photos allowed", apiErr.Message)
	// The rejected add must not disturb what was already staged.
	assert.Equal(t, MaxPhotos, set.Count())
}

func TestPhotoSet_CapCountsExistingServerPhotos(t *testing.T) {
	// An edit session starts with the record's stored photo URLs; the cap
	// applies to the combined total, not just the newly staged files.
	existing := []string{
		"/uploads/a.jpg", "/uploads/b.jpg", "/uploads/c.jpg",
		"/uploads/d.jpg", "/uploads/e.jpg",
	}
	set := NewPhotoSet(existing)

	err := set.AddBytes("extra.jpg", []byte{0xff, 0xd8})
	require.Error(t, err)
	apiErr, ok := apierrors.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, apierrors.ErrCodePhotoLimit, apiErr.Code)
	assert.Zero(t, set.Count())

	t.Run("partial headroom", func(t *testing.T) {
		set := NewPhotoSet(existing[:3])
		require.NoError(t, set.AddBytes("one.jpg", nil))
		require.NoError(t, set.AddBytes("two.jpg", nil))
		err := set.AddBytes("three.jpg", nil)
		require.Error(t, err)
		assert.Equal(t, 2, set.Count())
	})
}

func TestPhotoSet_AddFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rex.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg-bytes"), 0o644))

	set := NewPhotoSet(nil)
	require.NoError(t, set.AddFile(path))
	require.Equal(t, 1, set.Count())
	staged := set.Staged()[0]
	assert.Equal(t, "rex.jpg", staged.Name)
	assert.Equal(t, []byte("jpeg-bytes"), staged.Data)
	assert.NotEmpty(t, staged.ID)

	t.Run("missing file is rejected without staging", func(t *testing.T) {
		err := set.AddFile(filepath.Join(dir, "gone.jpg"))
		require.Error(t, err)
		assert.Equal(t, 1, set.Count())
	})

	t.Run("cap checked before the file is read", func(t *testing.T) {
		full := NewPhotoSet(nil)
		for i := 0; i < MaxPhotos; i++ {
			require.NoError(t, full.AddBytes(fmt.Sprintf("p%d.jpg", i), nil))
		}
		// A nonexistent path would error on read; the cap error must win.
		err := full.AddFile(filepath.Join(dir, "unread.jpg"))
		apiErr, ok := apierrors.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, apierrors.ErrCodePhotoLimit, apiErr.Code)
	})
}

func TestPhotoSet_Remove(t *testing.T) {
	set := NewPhotoSet(nil)
	require.NoError(t, set.AddBytes("keep.jpg", nil))
	require.NoError(t, set.AddBytes("drop.jpg", nil))
	id := set.Staged()[1].ID

	set.Remove(id)
	require.Equal(t, 1, set.Count())
	assert.Equal(t, "keep.jpg", set.Staged()[0].Name)

	set.Remove("no-such-id")
	assert.Equal(t, 1, set.Count())
}

func TestPhotoSet_AdoptServerURLs(t *testing.T) {
	set := NewPhotoSet([]string{"/uploads/old.jpg"})
	require.NoError(t, set.AddBytes("new.jpg", []byte("data")))

	set.AdoptServerURLs([]string{"/uploads/old.jpg", "/uploads/new.jpg"})
	assert.Zero(t, set.Count())
	assert.Equal(t, []string{"/uploads/old.jpg", "/uploads/new.jpg"}, set.ServerURLs())

	// After adoption the set can stage a fresh batch up to the cap again.
	require.NoError(t, set.AddBytes("another.jpg", nil))
	assert.Equal(t, 1, set.Count())
}
