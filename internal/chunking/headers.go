package chunking

import (
	"regexp"
	"strings"
)

// headingLineRE matches an ATX markdown heading line: 1-6 leading '#'
// characters, required whitespace, then the rest of the line. It is
// intentionally applied to every line regardless of fenced-code-block
// context: spec §4.5 allows this as the minimum acceptable behavior, and
// the reference implementation does the same.
var headingLineRE = regexp.MustCompile(`(?m)^#{1,6}[ \t]+.*$`)

// headingFrame is one live entry in the outline stack: a heading level in
// 1..6 and the full heading line text (without trailing newline).
type headingFrame struct {
	level int
	text  string
}

// HeaderTracker is an online consumer of splits that maintains the
// current markdown outline, used by the merge engine to prepend heading
// context to chunks. A HeaderTracker is constructed fresh for each
// SplitText call; it is not safe to share across concurrent calls.
type HeaderTracker struct {
	frames []headingFrame
}

// NewHeaderTracker returns an empty tracker.
func NewHeaderTracker() *HeaderTracker {
	return &HeaderTracker{}
}

// Update scans split line-by-line for ATX heading lines and updates the
// outline stack: for each heading found at level L, every frame with
// level >= L is popped before the new frame is pushed, preserving the
// invariant that levels strictly increase from bottom to top.
func (h *HeaderTracker) Update(split string) {
	for _, line := range headingLineRE.FindAllString(split, -1) {
		level := headingLevel(line)
		h.push(level, line)
	}
}

func (h *HeaderTracker) push(level int, line string) {
	i := len(h.frames)
	for i > 0 && h.frames[i-1].level >= level {
		i--
	}
	h.frames = append(h.frames[:i], headingFrame{level: level, text: line})
}

// Headers renders the current outline as one heading per line, shallowest
// first, each terminated by a newline. Returns "" when the outline is
// empty.
func (h *HeaderTracker) Headers() string {
	if len(h.frames) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, f := range h.frames {
		sb.WriteString(f.text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' && n < 6 {
		n++
	}
	return n
}
