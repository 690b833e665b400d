package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// MaxFileSize is the hard ceiling on a single source file's size (spec §6.1).
const MaxFileSize = 1 << 30 // 1 GiB

// SourceManager owns an ordered collection of SourceFiles, indexed by a dense
// FileID, and provides global byte-offset-to-line/column resolution.
//
// LoadFile canonicalizes the path and returns the existing FileID if the
// path was already loaded; otherwise it reads the file and appends a new
// entry. UpdateFile replaces a file's bytes in place (editor use), preserving
// its FileID.
type SourceManager struct {
	files   []*SourceFile
	index   map[string]FileID // canonical path -> id
	baseDir string
}

// NewSourceManager creates an empty SourceManager.
func NewSourceManager() *SourceManager {
	return &SourceManager{
		files: make([]*SourceFile, 0),
		index: make(map[string]FileID),
	}
}

// NewSourceManagerWithBase creates a SourceManager that resolves relative
// paths against baseDir.
func NewSourceManagerWithBase(baseDir string) *SourceManager {
	m := NewSourceManager()
	m.baseDir = baseDir
	return m
}

func (m *SourceManager) SetBaseDir(dir string) { m.baseDir = dir }

func (m *SourceManager) BaseDir() string {
	if m.baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return m.baseDir
}

// LoadFile reads path from disk, normalizing BOM/CRLF, and returns its
// FileID. If path (canonicalized) was already loaded, the existing FileID is
// returned without touching disk again.
func (m *SourceManager) LoadFile(path string) (FileID, error) {
	canon := m.canonicalize(path)
	if id, ok := m.index[canon]; ok {
		return id, nil
	}

	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	if len(content) > MaxFileSize {
		return 0, fmt.Errorf("source file %q exceeds %d byte limit", path, MaxFileSize)
	}

	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	flags := FileFlags(0)
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return m.add(canon, content, flags), nil
}

// AddVirtual adds an in-memory file (REPL, editor, test) under name,
// returning a fresh FileID flagged FileVirtual.
func (m *SourceManager) AddVirtual(name string, content []byte) (FileID, error) {
	if len(content) > MaxFileSize {
		return 0, fmt.Errorf("virtual source %q exceeds %d byte limit", name, MaxFileSize)
	}
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)
	flags := FileVirtual
	if hadBOM {
		flags |= FileHadBOM
	}
	if hadCRLF {
		flags |= FileNormalizedCRLF
	}
	return m.add(normalizePath(name), content, flags), nil
}

func (m *SourceManager) add(canonPath string, content []byte, flags FileFlags) FileID {
	lenFiles, err := safecast.Conv[uint32](len(m.files))
	if err != nil {
		panic(fmt.Errorf("source manager: file count overflow: %w", err))
	}
	id := FileID(lenFiles)
	m.files = append(m.files, &SourceFile{
		ID:         id,
		Path:       canonPath,
		Content:    content,
		LineStarts: buildLineStarts(content),
		Hash:       sha256.Sum256(content),
		Flags:      flags,
	})
	m.index[canonPath] = id
	return id
}

// UpdateFile replaces id's content in place, recomputing the line-start
// index, while preserving FileID and Path. Intended for editor integration.
func (m *SourceManager) UpdateFile(id FileID, content []byte) error {
	if int(id) >= len(m.files) {
		return fmt.Errorf("source manager: invalid FileID %d", id)
	}
	if len(content) > MaxFileSize {
		return fmt.Errorf("source file exceeds %d byte limit", MaxFileSize)
	}
	content, hadBOM := removeBOM(content)
	content, hadCRLF := normalizeCRLF(content)

	f := m.files[id]
	f.Content = content
	f.LineStarts = buildLineStarts(content)
	f.Hash = sha256.Sum256(content)
	if hadBOM {
		f.Flags |= FileHadBOM
	} else {
		f.Flags &^= FileHadBOM
	}
	if hadCRLF {
		f.Flags |= FileNormalizedCRLF
	} else {
		f.Flags &^= FileNormalizedCRLF
	}
	return nil
}

// Get returns the SourceFile for id. Panics on an out-of-range id; callers
// are expected to hold a FileID obtained from this manager.
func (m *SourceManager) Get(id FileID) *SourceFile {
	return m.files[id]
}

// GetByPath returns the FileID for a previously loaded path.
func (m *SourceManager) GetByPath(path string) (FileID, bool) {
	id, ok := m.index[m.canonicalize(path)]
	return id, ok
}

// Resolve converts a span into 1-based start/end line/column pairs.
func (m *SourceManager) Resolve(span Span) (start, end LineCol) {
	f := m.files[span.File]
	return toLineCol(f.LineStarts, span.Start), toLineCol(f.LineStarts, span.End)
}

// OffsetForLineCol converts a 1-based (line, col) position back into a byte
// offset within file id, for editor integration.
func (m *SourceManager) OffsetForLineCol(id FileID, lc LineCol) uint32 {
	f := m.files[id]
	contentLen, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source manager: content length overflow: %w", err))
	}
	return toOffset(f.LineStarts, contentLen, lc)
}

func (m *SourceManager) canonicalize(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return normalizePath(abs)
	}
	return normalizePath(path)
}
