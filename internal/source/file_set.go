package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
)

// FileSet owns every input of one run. Spans carry only a FileID, so the set
// is what turns them back into paths, lines and columns.
//
// Loading is single-threaded; after that the set is shared read-only between
// expansion workers.
type FileSet struct {
	files []File
	base  string // корень для относительных путей в выводе
}

// NewFileSet creates an empty set rooted at the working directory.
func NewFileSet() *FileSet {
	return &FileSet{}
}

// NewFileSetWithBase creates an empty set whose paths render relative to base.
func NewFileSetWithBase(base string) *FileSet {
	return &FileSet{base: base}
}

// BaseDir returns the directory relative paths are computed against.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.base != "" {
		return fileSet.base
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Len returns the number of files in the set.
func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// Add registers content under path. Adding the same path twice yields two
// independent files; the set never deduplicates.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("too many files: %w", err))
	}
	id := FileID(n)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	return id
}

// Load reads path from disk. A leading BOM is stripped and CRLF line endings
// become LF before the content is added; the flags record both.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path comes from the command line
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var flags FileFlags
	raw, bom := removeBOM(raw)
	if bom {
		flags |= FileHadBOM
	}
	raw, crlf := normalizeCRLF(raw)
	if crlf {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, raw, flags), nil
}

// AddVirtual adds in-memory content (stdin, tests, wire requests).
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the file for id. The pointer stays valid until the next Add.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

// Resolve converts both ends of span into 1-based line/column pairs.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	idx := fileSet.files[span.File].LineIdx
	return toLineCol(idx, span.Start), toLineCol(idx, span.End)
}

func (f *File) size() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("file %s too large: %w", f.Path, err))
	}
	return n
}

// Text returns the bytes covered by span, clamped to the file content.
func (f *File) Text(span Span) string {
	n := f.size()
	start, end := min(span.Start, n), min(span.End, n)
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

// LineCount returns the number of lines; a trailing newline opens one more
// (empty) line.
func (f *File) LineCount() uint32 {
	return uint32(len(f.LineIdx)) + 1
}

// LineStart returns the offset of the first byte of line (1-based). Lines
// past the end map to the content length.
func (f *File) LineStart(line uint32) uint32 {
	switch {
	case line <= 1:
		return 0
	case line-2 < uint32(len(f.LineIdx)):
		return f.LineIdx[line-2] + 1
	default:
		return f.size()
	}
}

// LineEnd returns the offset just before the newline ending line (1-based).
func (f *File) LineEnd(line uint32) uint32 {
	if line == 0 {
		return 0
	}
	if line-1 < uint32(len(f.LineIdx)) {
		return f.LineIdx[line-1]
	}
	return f.size()
}

// Line returns line (1-based) without its newline; missing lines are empty.
func (f *File) Line(line uint32) string {
	if line == 0 || line > f.LineCount() {
		return ""
	}
	start, end := f.LineStart(line), f.LineEnd(line)
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders the path for output. mode is one of "absolute",
// "relative", "basename" or "auto"; anything else keeps the stored path.
func (f *File) FormatPath(mode, baseDir string) string {
	var (
		out string
		err error
	)
	switch mode {
	case "absolute":
		out, err = AbsolutePath(f.Path)
	case "relative":
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		out, err = RelativePath(f.Path, baseDir)
	case "basename":
		out = BaseName(f.Path)
	case "auto":
		// длинные абсолютные пути сворачиваем до имени файла
		out = f.Path
		if filepath.IsAbs(f.Path) && len(f.Path) >= 40 {
			out = BaseName(f.Path)
		}
	default:
		out = f.Path
	}
	if err != nil || out == "" {
		return f.Path
	}
	return out
}
