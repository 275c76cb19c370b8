package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/squid-bingo/internal/apperror"
)

func TestBingoFileRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Save and GetByID", func(t *testing.T) {
		// Given: a repository over a directory that does not exist yet
		dir := filepath.Join(t.TempDir(), "bingo-files")
		fileRepo := NewBingoFileRepository(dir)

		// When: a file is saved and read back
		require.NoError(t, fileRepo.Save(ctx, "test-1.txt", "1, 2\n\n1\n"))
		content, err := fileRepo.GetByID(ctx, "test-1.txt")

		// Then: the content is unchanged
		require.NoError(t, err)
		assert.Equal(t, "1, 2\n\n1\n", content)

		_, err = os.Stat(filepath.Join(dir, "test-1.txt"))
		require.NoError(t, err)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		fileRepo := NewBingoFileRepository(t.TempDir())

		// When: a missing file is requested
		_, err := fileRepo.GetByID(ctx, "missing.txt")

		// Then: an ErrFileNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrFileNotFound)
	})

	t.Run("Invalid file id", func(t *testing.T) {
		fileRepo := NewBingoFileRepository(t.TempDir())

		for _, fileID := range []string{"", "..", "../secret.txt", `dir\file.txt`} {
			_, err := fileRepo.GetByID(ctx, fileID)
			require.ErrorIs(t, err, apperror.ErrInvalidFileID, fileID)

			err = fileRepo.Save(ctx, fileID, "1")
			require.ErrorIs(t, err, apperror.ErrInvalidFileID, fileID)
		}
	})
}
