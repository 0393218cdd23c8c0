package source

import "sync"

// prefixDropThreshold bounds the cost of slicing off an already-consumed
// prefix of chunks[0] relative to the copy a straddling read is about to
// do anyway. Grounded on gram.Gram.slide, which performs the equivalent
// "drop consumed prefix, reclaim space" move for its own buffer.
const prefixDropThreshold = 1024

// NewStream returns an empty StreamSource. Push data with Write, signal
// end-of-input with Flush.
func NewStream() *StreamSource {
	s := &StreamSource{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// StreamSource satisfies Source over an accumulating queue of chunks, with
// backpressure expressed as a blocked Read call: a Read asking for more
// bytes than are currently buffered parks its calling goroutine on a
// condition variable until Write or Flush wakes it.
//
// At most one Read is ever in flight on a given StreamSource — this is not
// separately enforced, it falls out of the fact that only the parser
// goroutine driving a single parse calls Read. pendingN is kept anyway,
// purely for introspection (Pending), mirroring the spec's naming of the
// at-most-one-outstanding request as a first-class thing.
type StreamSource struct {
	mu   sync.Mutex
	cond *sync.Cond

	chunks         [][]byte
	offset         int // cursor inside chunks[0]
	availableBytes int
	chunkTotal     int // true invariant: sum(len(chunks))
	closed         bool
	pendingN       int
}

// Write ingests a chunk, copying it so the caller is free to reuse its
// buffer the moment Write returns (the io.Writer contract). It wakes a
// blocked Read if the new total satisfies it.
func (s *StreamSource) Write(chunk []byte) (int, error) {
	n := len(chunk)
	if n == 0 {
		return 0, nil
	}

	owned := make([]byte, n)
	copy(owned, chunk)

	s.mu.Lock()
	s.chunks = append(s.chunks, owned)
	s.chunkTotal += n
	s.availableBytes += n
	s.cond.Broadcast()
	s.mu.Unlock()

	return n, nil
}

// Flush signals end-of-input. Any Read blocked on more bytes than will
// ever arrive wakes and reports EOF.
func (s *StreamSource) Flush() {
	s.mu.Lock()
	s.closed = true
	s.cond.Broadcast()
	s.mu.Unlock()
}

// Read implements Source. It blocks until n bytes are buffered or the
// source is flushed without enough remaining.
func (s *StreamSource) Read(n int) (buf []byte, offset int, ok bool) {
	if n < 1 {
		panic("source: Read requires n >= 1")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pendingN = n
	for s.availableBytes < n && !s.closed {
		s.cond.Wait()
	}
	s.pendingN = 0

	if s.availableBytes < n {
		return nil, 0, false
	}

	buf, offset = s.satisfy(n)
	return buf, offset, true
}

// satisfy must be called with mu held and availableBytes >= n.
func (s *StreamSource) satisfy(n int) (buf []byte, offset int) {
	if len(s.chunks[0])-s.offset < n {
		s.coalesce()
	}

	chunk := s.chunks[0]
	curOffset := s.offset

	if len(chunk)-s.offset == n {
		s.chunkTotal -= len(chunk)
		s.chunks = s.chunks[1:]
		s.offset = 0
	} else {
		s.offset += n
	}

	s.availableBytes -= n
	return chunk, curOffset
}

// coalesce merges every held chunk into one, first dropping the already
// consumed prefix of chunks[0] if it has grown past prefixDropThreshold.
// Called only when a request straddles a chunk boundary.
func (s *StreamSource) coalesce() {
	if s.offset > prefixDropThreshold {
		dropped := s.offset
		s.chunks[0] = s.chunks[0][s.offset:]
		s.chunkTotal -= dropped
		s.offset = 0
	}

	merged := make([]byte, s.chunkTotal)
	pos := 0
	for _, c := range s.chunks {
		pos += copy(merged[pos:], c)
	}
	s.chunks = [][]byte{merged}
}

// AvailableBytes returns the number of currently buffered, unread bytes.
func (s *StreamSource) AvailableBytes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.availableBytes
}

// Pending reports the size of the currently blocked Read, if any.
func (s *StreamSource) Pending() (n int, waiting bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingN, s.pendingN > 0
}
