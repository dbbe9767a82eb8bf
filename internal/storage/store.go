package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/everyside/vixel/internal/frame"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.bin"
)

// Store keeps recordings under baseDir, one directory per recording named
// by its ULID.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Metadata struct {
	ID        string    `json:"id"`
	Effect    string    `json:"effect"`
	Preset    string    `json:"preset,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	FrameRate float64   `json:"frame_rate"`
	Frames    int       `json:"frames"`
	// Physical is set when frames were recorded in wiring order.
	Physical bool               `json:"physical,omitempty"`
	Metrics  map[string]float64 `json:"metrics,omitempty"`
}

func (m Metadata) Geometry() (frame.Geometry, error) {
	return frame.NewGeometry(m.Width, m.Height)
}

func (s *Store) dir(id string) string {
	return filepath.Join(s.baseDir, id)
}

func (s *Store) writeMetadata(meta Metadata) error {
	f, err := os.Create(filepath.Join(s.dir(meta.ID), metadataFile))
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// List returns every readable recording, oldest first.
func (s *Store) List() ([]Metadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []Metadata{}, nil
		}
		return nil, err
	}

	recs := make([]Metadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := ulid.Parse(entry.Name()); err != nil {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		recs = append(recs, *meta)
	}

	// ULIDs sort lexically by creation time
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })
	return recs, nil
}

func (s *Store) Load(id string) (*Metadata, error) {
	data, err := os.ReadFile(filepath.Join(s.dir(id), metadataFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecording, id, err)
	}
	return &meta, nil
}

// LoadFrames decodes every frame of a recording. Frame numbers and times
// are rebuilt from the recorded frame rate.
func (s *Store) LoadFrames(id string) (*Metadata, []*frame.Frame, error) {
	meta, err := s.Load(id)
	if err != nil {
		return nil, nil, err
	}
	g, err := meta.Geometry()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecording, id, err)
	}

	data, err := os.ReadFile(filepath.Join(s.dir(id), framesFile))
	if err != nil {
		return nil, nil, err
	}

	size := frame.Size(g)
	if len(data)%size != 0 {
		return nil, nil, fmt.Errorf("%w: %s: %d bytes is not a multiple of %d", ErrCorruptRecording, id, len(data), size)
	}

	frames := make([]*frame.Frame, 0, len(data)/size)
	for off := 0; off < len(data); off += size {
		f, err := frame.Decode(data[off : off+size])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: frame %d: %v", ErrCorruptRecording, id, len(frames), err)
		}
		f.Num = len(frames)
		if meta.FrameRate > 0 {
			f.Time = time.Duration(float64(f.Num) / meta.FrameRate * float64(time.Second))
		}
		frames = append(frames, f)
	}
	return meta, frames, nil
}
