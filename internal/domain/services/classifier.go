// Package services contains the pure domain logic of the converter: line
// classification, manifest rendering, and project-name derivation. Nothing in
// this package performs I/O.
package services

import (
	"regexp"
	"strings"

	"github.com/ochairo/req2poetry/internal/domain/entities"
)

// namePattern splits a requirement into a leading package-name run and the
// remainder holding the version constraint, if any.
var namePattern = regexp.MustCompile(`^([A-Za-z0-9._-]+)(.*)$`)

// Classify inspects a single requirement line and decides how it maps onto
// the generated manifest. It is a pure function of the line text: no cross-line
// state, and every input maps to exactly one outcome.
//
// Rules are ordered, first match wins:
//  1. blank line -> Skip
//  2. comment (leading #) -> Skip
//  3. pip flag (leading -, e.g. -r, -e, --index-url) -> Skip
//  4. VCS/URL/extras/marker syntax (git+, http, [, ;) -> Complex
//  5. leading identifier run -> Parsed(name, constraint)
//  6. anything else -> Unparseable
func Classify(line string) entities.Classification {
	trimmed := strings.TrimSpace(line)

	if trimmed == "" {
		return entities.Classification{Kind: entities.KindSkip, Original: line}
	}

	if strings.HasPrefix(trimmed, "#") {
		return entities.Classification{Kind: entities.KindSkip, Original: line}
	}

	// Flags carry no package/constraint information the manifest can represent
	if strings.HasPrefix(trimmed, "-") {
		return entities.Classification{Kind: entities.KindSkip, Original: line}
	}

	// Syntax the key = "constraint" form cannot express is surfaced for manual
	// resolution rather than silently mis-parsed. A bare "[" anywhere on the
	// line triggers this, even outside extras syntax.
	if strings.Contains(trimmed, "git+") ||
		strings.Contains(trimmed, "http") ||
		strings.Contains(trimmed, "[") ||
		strings.Contains(trimmed, ";") {
		return entities.Classification{Kind: entities.KindComplex, Original: line}
	}

	if m := namePattern.FindStringSubmatch(trimmed); m != nil {
		constraint := strings.TrimSpace(m[2])
		if constraint == "" {
			constraint = "*"
		}
		return entities.Classification{
			Kind:       entities.KindParsed,
			Name:       m[1],
			Constraint: constraint,
			Original:   line,
		}
	}

	return entities.Classification{Kind: entities.KindUnparseable, Original: line}
}

// IsFlagLine reports whether a line is a pip flag/directive (leading dash
// after trimming). Used by callers to decide whether a Skip deserves a
// diagnostic notice.
func IsFlagLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "-")
}
