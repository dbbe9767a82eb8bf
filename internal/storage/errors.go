package storage

import "errors"

var (
	ErrNotFound         = errors.New("storage: recording not found")
	ErrCorruptRecording = errors.New("storage: corrupt recording")
	ErrClosed           = errors.New("storage: recorder closed")
)
