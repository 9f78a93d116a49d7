// Package chunking implements the recursive, overlap-aware text splitter
// that turns a single normalized document string into a sequence of
// size-bounded, position-addressable chunks for embedding and retrieval.
//
// The package is a pure, synchronous transform: SplitText takes one input
// string and a Splitter built from a validated Config, and returns the
// ordered chunk list. It holds no shared mutable state, so a *Splitter is
// safe to reuse concurrently across goroutines as long as each call to
// SplitText gets its own header tracker, which it does internally.
package chunking

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Chunk is the unit handed to the embedding/indexing layer: the literal
// text a consumer sees, plus the half-open [Start, End) byte interval into
// the original input that the chunk's non-synthetic content was drawn
// from. Start and End are byte offsets (not rune counts) into the input
// string, independent of whatever unit LenFunc measures size in.
type Chunk struct {
	Start int
	End   int
	Text  string
}

// element is an in-flight member of the chunk buffer being assembled by
// the merge engine. A synthetic heading prefix has Start == End.
type element struct {
	start int
	end   int
	text  string
}

func (e element) synthetic() bool { return e.start == e.end }

// LenFunc measures the "size" of a string for both ChunkSize and
// ChunkOverlap. It must be monotone: appending characters never decreases
// the result. The default counts Unicode code points.
type LenFunc func(string) int

// RuneLen is the default LenFunc: Unicode character count.
func RuneLen(s string) int { return utf8.RuneCountInString(s) }

// Default configuration values, matching the reference splitter.
const (
	DefaultChunkSize    = 512
	DefaultChunkOverlap = 100
)

// DefaultSeparators is the priority-ordered list of separators tried by
// the recursive splitter before it falls back to per-character splitting.
func DefaultSeparators() []string {
	return []string{"\n", "。", " "}
}

// DefaultProtectedPatterns is the priority-ordered list of regexes whose
// matches must never be split across chunks: LaTeX display math, markdown
// images, markdown links, markdown table headers, markdown table body
// rows, and fenced-code-block header lines.
func DefaultProtectedPatterns() []string {
	return []string{
		`\$\$[\s\S]*?\$\$`,
		`!\[.*?\]\(.*?\)`,
		`\[.*?\]\(.*?\)`,
		`(?:\|[^|\n]*)+\|[\r\n]+\s*(?:\|\s*:?-{3,}:?\s*)+\|[\r\n]+`,
		`(?:\|[^|\n]*)+\|[\r\n]+`,
		"```(?:\\w+)[\r\n]+[^\r\n]*",
	}
}

// Config is the immutable configuration consumed by New. A zero (or
// negative) ChunkSize falls back to DefaultChunkSize; a zero ChunkOverlap
// is kept as "no overlap". A nil LenFunc falls back to RuneLen; a nil Separators or
// ProtectedPatterns falls back to its default list, while a non-nil empty
// slice is honored as an explicit "no separators"/"no protected spans"
// choice.
type Config struct {
	ChunkSize         int
	ChunkOverlap      int
	Separators        []string
	ProtectedPatterns []string
	LenFunc           LenFunc
	Logger            logrus.FieldLogger
}

// DefaultConfig returns the reference default configuration: chunk size
// 512, overlap 100, the default separator and protected-pattern lists,
// and character-count length measurement.
func DefaultConfig() Config {
	return Config{
		ChunkSize:         DefaultChunkSize,
		ChunkOverlap:      DefaultChunkOverlap,
		Separators:        DefaultSeparators(),
		ProtectedPatterns: DefaultProtectedPatterns(),
		LenFunc:           RuneLen,
	}
}

// Splitter is a validated, ready-to-use chunker. Construct with New.
type Splitter struct {
	cfg         Config
	protectedRe []*regexp.Regexp
	splitFns    []splitFunc
	logger      logrus.FieldLogger
}

// New validates cfg and compiles its regex lists, returning a
// configuration error if chunk_overlap < 0, chunk_overlap >= chunk_size,
// or a protected pattern does not compile.
// This is the construction-time validation named in spec §7: fatal to the
// caller, never retried. A ChunkSize <= 0 is not an error: it defaults to
// DefaultChunkSize; ChunkOverlap has no implicit default since 0 is a
// legal value (no overlap) — start from DefaultConfig() to get 100.
func New(cfg Config) (*Splitter, error) {
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.ChunkOverlap < 0 {
		return nil, fmt.Errorf("chunking: chunk_overlap (%d) must be >= 0", cfg.ChunkOverlap)
	}
	if cfg.ChunkOverlap >= cfg.ChunkSize {
		return nil, fmt.Errorf("chunking: chunk_overlap (%d) must be smaller than chunk_size (%d)", cfg.ChunkOverlap, cfg.ChunkSize)
	}
	if cfg.Separators == nil {
		cfg.Separators = DefaultSeparators()
	}
	if cfg.ProtectedPatterns == nil {
		cfg.ProtectedPatterns = DefaultProtectedPatterns()
	}
	if cfg.LenFunc == nil {
		cfg.LenFunc = RuneLen
	}
	if cfg.Logger == nil {
		cfg.Logger = logrus.New()
	}

	protectedRe := make([]*regexp.Regexp, 0, len(cfg.ProtectedPatterns))
	for _, pat := range cfg.ProtectedPatterns {
		re, err := regexp.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("chunking: invalid protected pattern %q: %w", pat, err)
		}
		protectedRe = append(protectedRe, re)
	}

	splitFns := make([]splitFunc, 0, len(cfg.Separators)+1)
	for _, sep := range cfg.Separators {
		splitFns = append(splitFns, splitBySeparator(sep))
	}
	splitFns = append(splitFns, splitByChar)

	return &Splitter{
		cfg:         cfg,
		protectedRe: protectedRe,
		splitFns:    splitFns,
		logger:      cfg.Logger,
	}, nil
}

// SplitText partitions input into overlapping, size-bounded chunks. It is
// the package's single entry point and composes, in order: the recursive
// splitter (B), the protected-span scanner (C), the splice step (D), and
// the merge engine (F), which drives a freshly constructed header tracker
// (E) as it consumes splits. All state is scoped to this call.
func (s *Splitter) SplitText(input string) []Chunk {
	if input == "" {
		return nil
	}

	splits := s.split(input)
	protected := s.scanProtected(input)
	joined := joinProtected(splits, protected)

	if got := concatAll(joined); got != input {
		s.logger.WithFields(logrus.Fields{
			"input_len":  len(input),
			"joined_len": len(got),
		}).Error("chunking: splice output does not reconcatenate to input; emitting best-effort chunks")
	}

	return s.merge(joined)
}

func concatAll(splits []string) string {
	total := 0
	for _, s := range splits {
		total += len(s)
	}
	buf := make([]byte, 0, total)
	for _, s := range splits {
		buf = append(buf, s...)
	}
	return string(buf)
}
