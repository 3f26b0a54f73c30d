package plid

import (
	"context"
	"sort"
)

// Classifier labels a chunk of bytes with a language. Implementations
// adapt an external classification model; plid only consumes the label
// string.
type Classifier interface {
	Label(ctx context.Context, segment []byte) (string, error)
}

const (
	defaultSegments = 5
	defaultOverlap  = 0.5
)

// WindowIdentifier sweeps a snippet with overlapping segments, classifies
// each segment, and majority-votes the mapped labels. Segments whose
// labels do not map to a supported language are ignored; when nothing
// maps, keyword/operator voting decides instead.
type WindowIdentifier struct {
	classifier Classifier
	segments   int
	overlap    float64
}

// NewWindowIdentifier builds a WindowIdentifier with the default window
// geometry (5 segments, 50% overlap).
func NewWindowIdentifier(c Classifier) *WindowIdentifier {
	return &WindowIdentifier{classifier: c, segments: defaultSegments, overlap: defaultOverlap}
}

// Identify classifies text and returns a registry name. Classifier
// failures on individual segments are skipped rather than fatal; an error
// is returned only when the context is cancelled.
func (w *WindowIdentifier) Identify(ctx context.Context, text string) (string, error) {
	counts := make(map[string]int)
	order := make([]string, 0, w.segments)

	for _, start := range w.windowStarts(len(text)) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		end := start + w.segmentLength(len(text))
		if end > len(text) {
			end = len(text)
		}
		label, err := w.classifier.Label(ctx, []byte(text[start:end]))
		if err != nil {
			continue
		}
		name, ok := classifierLabels[label]
		if !ok {
			continue
		}
		if counts[name] == 0 {
			order = append(order, name)
		}
		counts[name]++
	}

	if len(counts) == 0 {
		return Guess(text), nil
	}

	// Most common mapped label; first-seen wins ties.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order[0], nil
}

// segmentLength mirrors the original window arithmetic: the text divided
// evenly across the configured segment count, at least one byte.
func (w *WindowIdentifier) segmentLength(textLen int) int {
	n := textLen / w.segments
	if n < 1 {
		n = 1
	}
	return n
}

// windowStarts returns the segment starting offsets: evenly stepped with
// the configured overlap, always covering the tail of the text, capped at
// the segment count.
func (w *WindowIdentifier) windowStarts(textLen int) []int {
	if w.segments <= 1 || textLen == 0 {
		return nil
	}

	segLen := w.segmentLength(textLen)
	step := int(float64(segLen) * (1 - w.overlap))
	if step < 1 {
		step = 1
	}

	limit := textLen - segLen + 1
	if limit < 1 {
		limit = 1
	}
	var starts []int
	for s := 0; s < limit; s += step {
		starts = append(starts, s)
	}
	if (len(starts) < w.segments && textLen > segLen) ||
		(len(starts) > 0 && starts[len(starts)-1]+segLen < textLen) {
		starts = append(starts, textLen-segLen)
	}
	if len(starts) > w.segments {
		starts = starts[:w.segments]
	}
	return starts
}
