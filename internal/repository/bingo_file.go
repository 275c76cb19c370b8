package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rocketscienceinc/squid-bingo/internal/apperror"
)

// BingoFileRepository reads and writes bingo files kept in one directory.
type BingoFileRepository interface {
	GetByID(ctx context.Context, fileID string) (string, error)
	Save(ctx context.Context, fileID, content string) error
}

type fsBingoFile struct {
	dir string
}

func NewBingoFileRepository(dir string) BingoFileRepository {
	return &fsBingoFile{
		dir: dir,
	}
}

func (that *fsBingoFile) GetByID(_ context.Context, fileID string) (string, error) {
	path, err := that.path(fileID)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", apperror.ErrFileNotFound, path)
	}

	if err != nil {
		return "", fmt.Errorf("failed to read bingo file: %w", err)
	}

	return string(data), nil
}

func (that *fsBingoFile) Save(_ context.Context, fileID, content string) error {
	path, err := that.path(fileID)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(that.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create bingo dir: %w", err)
	}

	if err = os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write bingo file: %w", err)
	}

	return nil
}

// path - joins the file id to the directory, ids must be plain file names.
func (that *fsBingoFile) path(fileID string) (string, error) {
	if fileID == "" || fileID == "." || fileID == ".." || strings.ContainsAny(fileID, `/\`) {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidFileID, fileID)
	}

	return filepath.Join(that.dir, fileID), nil
}
