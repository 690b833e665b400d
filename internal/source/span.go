package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) into the file identified by
// File. Start <= End always holds; it is the sole mechanism of source
// provenance used throughout the pipeline.
type Span struct {
	File  FileID
	Start uint32 // inclusive
	End   uint32 // exclusive
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
// Spans from different files cannot be merged; s is returned unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Merge is the two-argument form of Cover, matching the pipeline's
// merge(a, b) = (min starts, max ends) definition.
func Merge(a, b Span) Span {
	return a.Cover(b)
}

// Slice returns the bytes the span covers within src.
func (s Span) Slice(src []byte) []byte {
	return src[s.Start:s.End]
}

func (s Span) ShiftLeft(n uint32) Span {
	return Span{
		File:  s.File,
		Start: s.Start - n,
		End:   s.End - n,
	}
}

func (s Span) ShiftRight(n uint32) Span {
	return Span{
		File:  s.File,
		Start: s.Start + n,
		End:   s.End + n,
	}
}
