package entities

// ClassificationKind identifies the outcome of classifying one requirement line
type ClassificationKind string

// Classification outcomes for a single requirement line
const (
	// KindSkip is a blank line, a comment, or a pip flag; produces no output
	KindSkip ClassificationKind = "skip"

	// KindComplex is a line using syntax the manifest cannot express
	// (VCS reference, URL, extras bracket, environment marker)
	KindComplex ClassificationKind = "complex"

	// KindUnparseable is a line matching none of the recognized shapes
	KindUnparseable ClassificationKind = "unparseable"

	// KindParsed is a plain name-plus-constraint requirement
	KindParsed ClassificationKind = "parsed"
)

// Classification is the result of classifying a single requirement line.
// Name and Constraint are set only when Kind is KindParsed; Original always
// carries the untrimmed line text for FIXME markers and diagnostics.
type Classification struct {
	Kind       ClassificationKind
	Name       string
	Constraint string
	Original   string
}
