// Package file_box stores progress photo binaries on disk, next to a small
// JSON index so the store survives restarts.
package file_box

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/azylka/pulsefit/internal/telemetry/tracing"
	"github.com/azylka/pulsefit/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const indexJsonFileName = "photo-files.json"

var ErrFileNotFound = errors.New("file not found")

type StoredFile struct {
	Id        int64     `json:"id"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Type      string    `json:"type"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// NewId returns a simple unix time in micro,
// fair enough for use case of a simple file ID.
func NewId() int64 {
	return time.Now().UnixMicro()
}

type DiskStore struct {
	rootPath string
	files    map[int64]*StoredFile
	mutex    sync.RWMutex
}

func NewDiskStore(rootPath string) (*DiskStore, error) {
	if rootPath == "" {
		return nil, errors.New("root path cannot be empty")
	}

	files, err := loadIndex(rootPath)
	if err != nil {
		return nil, fmt.Errorf("load file index: %w", err)
	}

	return &DiskStore{
		rootPath: rootPath,
		files:    files,
	}, nil
}

type SaveFileParams struct {
	UserID   int
	Filename string
	FileType string
	Size     int64
	File     io.Reader
}

func (ds *DiskStore) Save(ctx context.Context, params SaveFileParams) (_ int64, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("file.name", params.Filename))
	span.SetAttributes(attribute.Int64("file.size", params.Size))

	if strings.Contains(params.Filename, "..") ||
		strings.Contains(params.Filename, "/") ||
		strings.Contains(params.Filename, "\\") {
		return -1, errors.New("invalid file name")
	}

	log.Debugf("disk store: saving new file %s for user %d", params.Filename, params.UserID)

	userDir := path.Join(ds.rootPath, fmt.Sprintf("user_%d", params.UserID))
	if err := os.MkdirAll(userDir, 0755); err != nil {
		return -1, fmt.Errorf("create user dir: %w", err)
	}

	newId := NewId()
	newFilePath := path.Join(userDir, fmt.Sprintf("%d_%s", newId, params.Filename))

	dst, err := os.Create(newFilePath)
	if err != nil {
		return -1, err
	}
	defer dst.Close()

	written, err := io.Copy(dst, params.File)
	if err != nil {
		return -1, err
	}

	ds.mutex.Lock()
	defer ds.mutex.Unlock()

	ds.files[newId] = &StoredFile{
		Id:        newId,
		UserID:    params.UserID,
		Name:      params.Filename,
		Path:      newFilePath,
		Type:      params.FileType,
		Size:      written,
		CreatedAt: time.Now(),
	}

	if err := saveIndex(ds.rootPath, ds.files); err != nil {
		return -1, fmt.Errorf("file saved, but failed to save index: %w", err)
	}

	return newId, nil
}

// Open returns the stored file info and a reader over its content.
// The caller closes the reader.
func (ds *DiskStore) Open(ctx context.Context, userID int, id int64) (_ *StoredFile, _ io.ReadCloser, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.open")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ds.mutex.RLock()
	file, ok := ds.files[id]
	ds.mutex.RUnlock()

	if !ok || file.UserID != userID {
		return nil, nil, ErrFileNotFound
	}

	src, err := os.Open(file.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", file.Path, err)
	}

	return file, src, nil
}

func (ds *DiskStore) Delete(ctx context.Context, userID int, id int64) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "diskStore.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ds.mutex.Lock()
	defer ds.mutex.Unlock()

	file, ok := ds.files[id]
	if !ok || file.UserID != userID {
		return ErrFileNotFound
	}

	if err := os.Remove(file.Path); err != nil {
		return err
	}

	delete(ds.files, id)

	if err := saveIndex(ds.rootPath, ds.files); err != nil {
		return fmt.Errorf("file deleted, but failed to save index: %w", err)
	}

	log.Debugf("disk store: file [%d] deleted", id)

	return nil
}

func rootPathExists(rootPath string) error {
	exists, err := pkg.PathExists(rootPath, true)
	if err != nil {
		return fmt.Errorf("check root path %s: %s", rootPath, err)
	}
	if !exists {
		return fmt.Errorf("root path [%s] does not exist", rootPath)
	}
	return nil
}

func loadIndex(rootPath string) (map[int64]*StoredFile, error) {
	if err := rootPathExists(rootPath); err != nil {
		return nil, err
	}

	indexJsonPath := path.Join(rootPath, indexJsonFileName)
	indexExists, err := pkg.PathExists(indexJsonPath, false)
	if err != nil {
		return nil, fmt.Errorf("check index file [%s]: %s", indexJsonPath, err)
	}

	if !indexExists {
		log.Debugln("file index JSON does not exist, starting fresh")
		return make(map[int64]*StoredFile), nil
	}

	indexJson, err := os.ReadFile(indexJsonPath)
	if err != nil {
		return nil, err
	}

	var files map[int64]*StoredFile
	if err := json.Unmarshal(indexJson, &files); err != nil {
		return nil, fmt.Errorf("unmarshal file index: %w", err)
	}
	if files == nil {
		files = make(map[int64]*StoredFile)
	}

	return files, nil
}

func saveIndex(rootPath string, files map[int64]*StoredFile) error {
	indexJsonPath := path.Join(rootPath, indexJsonFileName)

	indexJson, err := json.Marshal(files)
	if err != nil {
		return err
	}

	if err := os.WriteFile(indexJsonPath, indexJson, 0644); err != nil {
		return err
	}

	log.Debugln("file index saved")

	return nil
}
