package post

import (
	"strings"

	"github.com/gofrs/uuid"
)

// Form holds a raw post submission. Author and publication date are never
// taken from the submitter; the service stamps both.
type Form struct {
	Text    string
	GroupID string // empty means "no group"
	Image   string // relative media path, already stored by the caller
	Errors  map[string]string
}

// Validate normalizes the form and records field-level errors. Group
// existence is checked by the service against the store; this only rejects
// values that cannot name a group at all.
func (f *Form) Validate() bool {
	f.Errors = map[string]string{}

	f.Text = strings.TrimSpace(f.Text)
	if f.Text == "" {
		f.Errors["text"] = "post text cannot be empty"
	}

	if f.GroupID != "" {
		if _, err := uuid.FromString(f.GroupID); err != nil {
			f.Errors["group"] = "unknown group"
		}
	}

	return len(f.Errors) == 0
}

// Group returns the parsed group id, or nil when none was submitted.
func (f *Form) Group() *uuid.UUID {
	if f.GroupID == "" {
		return nil
	}
	id, err := uuid.FromString(f.GroupID)
	if err != nil {
		return nil
	}
	return &id
}
