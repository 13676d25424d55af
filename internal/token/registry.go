package token

import (
	"hash/fnv"
	"sync"
)

// file is one source file's arena: its text plus the tokens allocated
// against it. Line-start offsets are computed lazily the first time a
// position inside the file is located, then cached.
type file struct {
	path string
	src  string

	lineStarts []int // byte offset of the first byte of each line; built on demand
}

func (f *file) ensureLineStarts() {
	if f.lineStarts != nil {
		return
	}
	starts := []int{0}
	for i := 0; i < len(f.src); i++ {
		if f.src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	f.lineStarts = starts
}

func (f *file) locate(offset int) Position {
	f.ensureLineStarts()
	// binary search for the last line start <= offset
	lo, hi := 0, len(f.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	line := lo
	col := offset - f.lineStarts[line] + 1
	return Position{Line: line + 1, Column: col, Offset: offset}
}

// Registry is the per-compilation, per-file token arena described in
// spec §4.2. It owns the source text of every registered file and hands
// out Token values that reference it; tokens never outlive the Registry
// that produced them.
type Registry struct {
	mu    sync.Mutex
	files map[uint64]*file
}

// NewRegistry creates an empty token registry for one compilation.
func NewRegistry() *Registry {
	return &Registry{files: make(map[uint64]*file)}
}

func pathHash(path string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(path))
	return h.Sum64()
}

// RegisterFile records src as the content of path. It is idempotent on the
// path's hash: registering the same path twice reuses the first buffer.
func (r *Registry) RegisterFile(path, src string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pathHash(path)
	if _, ok := r.files[key]; ok {
		return
	}
	r.files[key] = &file{path: path, src: src}
}

// NewToken allocates a token against the named file's arena. The file must
// already be registered. offset/length are byte positions into the file's
// source text.
func (r *Registry) NewToken(path string, kind Kind, offset, length int) Token {
	r.mu.Lock()
	f := r.files[pathHash(path)]
	r.mu.Unlock()

	if f == nil {
		// Defensive: a token requested against an unregistered file still
		// gets a usable (if file-less) handle rather than panicking, since
		// nameres/typecheck must be able to poison and continue.
		f = &file{path: path}
	}
	return Token{Kind: kind, Offset: offset, Length: length, file: f}
}

// PathAndSource returns the path and full source text of the file tok
// was allocated against, read from the token's own file reference (ok is
// false for a zero Token). Used by the diagnostic printer
// to render source context around an error location.
func (r *Registry) PathAndSource(tok Token) (path, src string, ok bool) {
	if tok.file == nil {
		return "", "", false
	}
	return tok.file.path, tok.file.src, true
}

// FreeAll drops every registered file. Tokens allocated before this call
// keep a reference to their own file and still render; a token requested
// afterwards for a dropped path gets an empty source, as for any
// unregistered path.
func (r *Registry) FreeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files = make(map[uint64]*file)
}

// synthetic builds a Token not backed by any registered file, used by
// passes that must fabricate a placeholder (e.g. a cloned generic
// instantiation's synthetic wrapper token). The token gets its own
// "<synthetic>" file whose whole source is literal; Synthetic exports it.
func synthetic(kind Kind, literal string) Token {
	f := &file{path: "<synthetic>", src: literal}
	return Token{Kind: kind, Offset: 0, Length: len(literal), file: f}
}

// Synthetic exposes synthetic for callers outside the package (generic
// instantiation clones, poison recovery) that need a token with no real
// source location.
func Synthetic(kind Kind, literal string) Token {
	return synthetic(kind, literal)
}
