package capture

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"sync"
)

// FileDevice treats an image file as a camera with a single video track.
type FileDevice struct {
	Path string
}

func (d FileDevice) Open(_ context.Context) ([]Track, error) {
	f, err := os.Open(d.Path)
	if err != nil {
		return nil, err
	}
	return []Track{&fileTrack{f: f}}, nil
}

type fileTrack struct {
	mu sync.Mutex
	f  *os.File
}

func (t *fileTrack) Kind() string { return "video" }

func (t *fileTrack) ReadFrame() (image.Image, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.f == nil {
		return nil, ErrStopped
	}
	if _, err := t.f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	img, _, err := image.Decode(t.f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", t.f.Name(), err)
	}
	return img, nil
}

func (t *fileTrack) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.f == nil {
		return nil
	}
	err := t.f.Close()
	t.f = nil
	return err
}
