package errors

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// ValidateTemplateName validates a registered template name for safety and
// correctness. Template names map to descriptor files on disk, so anything
// that could escape the template directory is rejected.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences (.., /, \)
//   - No hidden-file names (leading .)
//   - Maximum length of 100 characters
//
// Whether the name is actually registered is checked separately against the
// template directory.
func ValidateTemplateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "template name cannot be empty")
	}

	if len(name) > 100 {
		return New(ErrCodeInvalidInput, "template name too long (max 100 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "template name contains invalid control characters")
		}
	}

	if name != filepath.Base(name) || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "invalid template name %q", name)
	}

	if strings.HasPrefix(name, ".") {
		return New(ErrCodeInvalidInput, "template name cannot start with a dot")
	}

	return nil
}

// sessionIDRegex matches generated session ids and their prefixes. Ids are
// UUID-shaped; only alphanumerics and dashes are accepted.
var sessionIDRegex = regexp.MustCompile(`^[a-zA-Z0-9-]+$`)

// ValidateSessionID validates a deck session id or id prefix. Session ids
// map to files on disk, so the same traversal concerns apply as for
// template names.
func ValidateSessionID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "session id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "session id too long (max 64 characters)")
	}

	if !sessionIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid session id %q", id)
	}

	return nil
}
