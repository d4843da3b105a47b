package dubbing

// Session carries the results of one user action between dependent steps
// (transcribe, translate, synthesize). The caller creates it at the start of
// an action and discards it at the end; it is never shared across requests.
type Session struct {
	InputPath string

	// Set by transcription.
	Language   string
	Transcript string
	SRT        string

	// Set by translation.
	TargetLanguage string
	Translated     string

	// Set by speech synthesis. The bytes are the artifact handed to the
	// caller; no temp path escapes the operation that produced them.
	Voiceover []byte
}
