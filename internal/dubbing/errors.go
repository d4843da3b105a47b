// Package dubbing holds the error taxonomy and the per-request session
// shared by every step of the pipeline.
package dubbing

import "errors"

var (
	// ErrInvalidArgument marks a contract violation in a pure function,
	// e.g. a negative timestamp. Always a caller bug.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTranscriptionFailed means the speech-to-text backend returned no
	// usable text or no detected language.
	ErrTranscriptionFailed = errors.New("transcription failed")

	// ErrExternalService marks a translation or speech-synthesis failure.
	ErrExternalService = errors.New("external service failed")

	// ErrArtifactIO marks a temporary file that could not be written,
	// read, or deleted.
	ErrArtifactIO = errors.New("artifact I/O failed")
)
