package question

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the typed load errors through errors.Is.
var (
	ErrResourceMissing = errors.New("resource missing")
	ErrIO              = errors.New("resource unreadable")
	ErrMalformedData   = errors.New("malformed question data")
)

// ResourceMissingError reports that the named resource does not exist in the provider.
type ResourceMissingError struct {
	Name string
	Err  error
}

func (err *ResourceMissingError) Error() string {
	return fmt.Sprintf("resource %q not found", err.Name)
}

func (err *ResourceMissingError) Unwrap() error { return err.Err }

func (err *ResourceMissingError) Is(target error) bool { return target == ErrResourceMissing }

// IOError reports a failure to open or read an existing resource.
type IOError struct {
	Name string
	Op   string
	Err  error
}

func (err *IOError) Error() string {
	return fmt.Sprintf("%s %q: %v", err.Op, err.Name, err.Err)
}

func (err *IOError) Unwrap() error { return err.Err }

func (err *IOError) Is(target error) bool { return target == ErrIO }

// Issue captures a schema problem in a single question record.
type Issue struct {
	Field   string
	Message string
}

// MalformedDataError reports question data that does not match the schema.
// Issues is populated for record-level validation failures; Err carries
// decoder failures.
type MalformedDataError struct {
	Name   string
	Issues []Issue
	Err    error
}

// Error returns a readable message for malformed data.
func (err *MalformedDataError) Error() string {
	prefix := "malformed question data"
	if err.Name != "" {
		prefix = fmt.Sprintf("malformed question data in %q", err.Name)
	}
	if len(err.Issues) > 0 {
		parts := make([]string, 0, len(err.Issues))
		for _, issue := range err.Issues {
			parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
		}
		return fmt.Sprintf("%s: %s", prefix, strings.Join(parts, "; "))
	}
	if err.Err != nil {
		return fmt.Sprintf("%s: %v", prefix, err.Err)
	}
	return prefix
}

func (err *MalformedDataError) Unwrap() error { return err.Err }

func (err *MalformedDataError) Is(target error) bool { return target == ErrMalformedData }
