// Package capture acquires image frames from a device and releases it afterwards.
package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"sync"

	"github.com/kdduha/sceramath/internal/media"
)

const jpegQuality = 90

var (
	ErrStopped = errors.New("capture stream stopped")
	ErrNoFrame = errors.New("no track delivers frames")
)

type Track interface {
	Kind() string
	Stop() error
}

// FrameReader is implemented by video tracks.
type FrameReader interface {
	ReadFrame() (image.Image, error)
}

type Device interface {
	Open(ctx context.Context) ([]Track, error)
}

// Stream owns the tracks acquired from a device until Stop.
type Stream struct {
	mu      sync.Mutex
	tracks  []Track
	stopped bool
}

func Start(ctx context.Context, dev Device) (*Stream, error) {
	tracks, err := dev.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open capture device: %w", err)
	}
	return &Stream{tracks: tracks}, nil
}

// Snapshot grabs a frame as a JPEG data URI and stops the stream.
// A failure to release the tracks is joined into the returned error.
func (s *Stream) Snapshot() (uri string, err error) {
	defer func() {
		if stopErr := s.Stop(); stopErr != nil {
			err = errors.Join(err, stopErr)
		}
	}()

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return "", ErrStopped
	}
	var reader FrameReader
	for _, t := range s.tracks {
		if fr, ok := t.(FrameReader); ok {
			reader = fr
			break
		}
	}
	s.mu.Unlock()

	if reader == nil {
		return "", ErrNoFrame
	}
	frame, err := reader.ReadFrame()
	if err != nil {
		return "", fmt.Errorf("failed to read frame: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frame, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return media.EncodeDataURI(media.MimeJPEG, buf.Bytes()), nil
}

// Stop releases every acquired track. Calling it again is a no-op.
func (s *Stream) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return nil
	}
	s.stopped = true

	var errs []error
	for _, t := range s.tracks {
		if err := t.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop %s track: %w", t.Kind(), err))
		}
	}
	s.tracks = nil
	return errors.Join(errs...)
}

func (s *Stream) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.stopped
}
