package source_test

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/stewi1014/binparse/source"
)

func TestBufferSourceReadsExactly(t *testing.T) {
	s := source.NewBuffer([]byte{1, 2, 3, 4, 5})

	buf, off, ok := s.Read(2)
	td.CmpTrue(t, ok)
	td.Cmp(t, buf[off:off+2], []byte{1, 2})

	buf, off, ok = s.Read(3)
	td.CmpTrue(t, ok)
	td.Cmp(t, buf[off:off+3], []byte{3, 4, 5})
}

func TestBufferSourceEOF(t *testing.T) {
	s := source.NewBuffer([]byte{1, 2})

	_, _, ok := s.Read(3)
	td.CmpFalse(t, ok)
}

func TestBufferSourceExactLength(t *testing.T) {
	s := source.NewBuffer([]byte{1, 2, 3})

	_, _, ok := s.Read(3)
	td.CmpTrue(t, ok)

	_, _, ok = s.Read(1)
	td.CmpFalse(t, ok)
}

func TestBufferSourceRemaining(t *testing.T) {
	s := source.NewBuffer([]byte{1, 2, 3, 4})
	td.Cmp(t, s.Remaining(), 4)
	s.Read(1)
	td.Cmp(t, s.Remaining(), 3)
}
