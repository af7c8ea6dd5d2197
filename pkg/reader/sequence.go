package reader

// FileSequence tracks an ordered queue of input files and the file
// currently being processed. Concrete readers embed it for their queue
// and finalize bookkeeping instead of inheriting from a base reader type.
//
// The queue only shrinks: it is populated once from the resolved inputs
// and popped front-first until empty. A FileSequence is not safe for
// concurrent use; readers are driven from a single goroutine.
type FileSequence struct {
	queue   []string
	current string
	cleanup func(path string)
}

// NewFileSequence creates an empty sequence. The optional cleanup hook
// runs during Finalize for the file that was in flight.
func NewFileSequence(cleanup func(path string)) *FileSequence {
	return &FileSequence{cleanup: cleanup}
}

// SetInputs replaces the queue with the resolved input paths.
func (s *FileSequence) SetInputs(paths []string) {
	s.queue = append([]string(nil), paths...)
}

// Next pops the first queued path and marks it as the current input.
// It returns false when the queue is empty.
func (s *FileSequence) Next() (string, bool) {
	if len(s.queue) == 0 {
		return "", false
	}
	path := s.queue[0]
	s.queue = s.queue[1:]
	s.current = path
	return path, true
}

// Current returns the path being processed, or "" when idle.
func (s *FileSequence) Current() string {
	return s.current
}

// Remaining returns the number of queued paths.
func (s *FileSequence) Remaining() int {
	return len(s.queue)
}

// HasFinished reports whether the queue is empty.
func (s *FileSequence) HasFinished() bool {
	return len(s.queue) == 0
}

// Finalize clears the current-input marker, running the cleanup hook if a
// file was in flight. Calling it again without an intervening Next is a
// no-op.
func (s *FileSequence) Finalize() {
	if s.current == "" {
		return
	}
	if s.cleanup != nil {
		s.cleanup(s.current)
	}
	s.current = ""
}
