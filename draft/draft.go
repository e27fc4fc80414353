// Package draft holds the uncommitted create-form values for the next user.
// The buffer is a value with a fixed field set; the roster core only depends
// on its read/reset contract.
package draft

import "fmt"

// Field names one of the fixed draft form fields.
type Field string

const (
	FieldUsername Field = "username"
	FieldEmail    Field = "email"
)

// Buffer is the in-progress form state. WithField and Reset return new
// values; the receiver is never modified.
type Buffer struct {
	Username string
	Email    string
}

// WithField replaces the single named field and leaves the other untouched.
// The field set is fixed, so an unknown field is a caller bug.
func (b Buffer) WithField(f Field, v string) Buffer {
	switch f {
	case FieldUsername:
		b.Username = v
	case FieldEmail:
		b.Email = v
	default:
		panic(fmt.Errorf("draft: unknown field %q", f))
	}
	return b
}

// Get reads the named field.
func (b Buffer) Get(f Field) string {
	switch f {
	case FieldUsername:
		return b.Username
	case FieldEmail:
		return b.Email
	default:
		panic(fmt.Errorf("draft: unknown field %q", f))
	}
}

// Reset clears both fields, the post-submit state of the create form.
func (b Buffer) Reset() Buffer {
	return Buffer{}
}

// Empty reports whether both fields are blank.
func (b Buffer) Empty() bool {
	return b == Buffer{}
}
