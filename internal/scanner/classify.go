package scanner

// Comparer is the data-parallel primitive: compare every byte of a
// WindowSize window against c and return a mask with bit i set where
// window[i] == c. Implementations differ only in speed.
type Comparer interface {
	Name() string
	EqMask(window []byte, c byte) uint64
}

// Classifier turns one window into a structural mask, threading a one bit
// carry from the previous window.
type Classifier interface {
	Classify(window []byte, carry bool) (mask uint64, carryOut bool)
}

// TextClassifier flags commas (structural) and the first byte after a
// space or comma that is neither (pseudo-structural).
type TextClassifier struct {
	Cmp Comparer
}

// Classify implements Classifier. carry reports whether the byte before
// the window was a space or comma; it is true before the first window.
func (t TextClassifier) Classify(window []byte, carry bool) (uint64, bool) {
	ws := t.Cmp.EqMask(window, Space)
	comma := t.Cmp.EqMask(window, Comma)
	delim := ws | comma

	var in uint64
	if carry {
		in = 1
	}
	pseudo := ^delim & ((delim << 1) | in)
	return pseudo | comma, delim>>(WindowSize-1) != 0
}

// MarkerClassifier flags every marker byte. Each one starts a value, so no
// pseudo-structural detection is needed and the carry passes through.
type MarkerClassifier struct {
	Cmp Comparer
}

// Classify implements Classifier.
func (m MarkerClassifier) Classify(window []byte, carry bool) (uint64, bool) {
	return m.Cmp.EqMask(window, Marker), carry
}
