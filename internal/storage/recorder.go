package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	logxi "github.com/mgutz/logxi/v1"
	"github.com/oklog/ulid/v2"

	"github.com/everyside/vixel/internal/animation"
	"github.com/everyside/vixel/internal/frame"
)

var logger = logxi.New("storage")

func SetLogLevel(level int) { logger.SetLevel(level) }

// Recorder appends every observed frame's wire bytes to a new recording.
// It is an animation.Observer and must only be fed from the loop goroutine.
type Recorder struct {
	store *Store
	meta  Metadata
	file  *os.File
	w     *bufio.Writer
	err   error
}

// Create starts a recording described by meta. ID, Timestamp and Frames
// are filled in by the store.
func (s *Store) Create(meta Metadata) (*Recorder, error) {
	if _, err := meta.Geometry(); err != nil {
		return nil, err
	}
	meta.ID = ulid.Make().String()
	meta.Timestamp = time.Now()
	meta.Frames = 0

	dir := s.dir(meta.ID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	f, err := os.Create(filepath.Join(dir, framesFile))
	if err != nil {
		return nil, err
	}

	logger.Info("recording", "id", meta.ID, "dir", dir)
	return &Recorder{store: s, meta: meta, file: f, w: bufio.NewWriter(f)}, nil
}

func (r *Recorder) ID() string { return r.meta.ID }

func (r *Recorder) Frames() int { return r.meta.Frames }

func (r *Recorder) OnFrame(f *frame.Frame, _ animation.Stats) {
	if r.err != nil {
		return
	}
	if r.w == nil {
		r.err = ErrClosed
		return
	}
	if f.Geometry.Width != r.meta.Width || f.Geometry.Height != r.meta.Height {
		r.err = fmt.Errorf("%w: frame %d is %s, recording is %dx%d",
			ErrCorruptRecording, f.Num, f.Geometry, r.meta.Width, r.meta.Height)
		logger.Error("recording stopped", "id", r.meta.ID, "err", r.err)
		return
	}
	if _, err := r.w.Write(f.Data()); err != nil {
		r.err = err
		logger.Error("recording stopped", "id", r.meta.ID, "err", err)
		return
	}
	r.meta.Frames++
}

// Err reports the first write failure, if any.
func (r *Recorder) Err() error { return r.err }

// Close flushes frames and writes metadata.json with the final frame count
// and metrics. It returns the first error seen while recording.
func (r *Recorder) Close(metrics map[string]float64) (*Metadata, error) {
	if r.w == nil {
		return nil, ErrClosed
	}
	err := r.w.Flush()
	if cerr := r.file.Close(); err == nil {
		err = cerr
	}
	r.w = nil
	if err != nil {
		return nil, err
	}

	r.meta.Metrics = metrics
	if err := r.store.writeMetadata(r.meta); err != nil {
		return nil, err
	}
	logger.Info("recording saved", "id", r.meta.ID, "frames", r.meta.Frames)

	meta := r.meta
	return &meta, r.err
}
