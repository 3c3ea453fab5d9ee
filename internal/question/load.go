package question

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultResource is the packaged resource holding the daily questions.
const DefaultResource = "questions.json"

// Load opens name in fsys, reads it fully and decodes it into questions.
// The resource is closed on every path. Failures are reported as
// *ResourceMissingError, *IOError or *MalformedDataError.
func Load(fsys fs.FS, name string) ([]Question, error) {
	file, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ResourceMissingError{Name: name, Err: err}
		}
		return nil, &IOError{Name: name, Op: "open", Err: err}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &IOError{Name: name, Op: "read", Err: err}
	}
	questions, err := Parse(data)
	if err != nil {
		var malformed *MalformedDataError
		if errors.As(err, &malformed) {
			malformed.Name = name
		}
		return nil, err
	}
	return questions, nil
}

// LoadFile loads a questions file from a filesystem path.
func LoadFile(path string) ([]Question, error) {
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Decode reads all of r and parses it as a questions document.
func Decode(r io.Reader) ([]Question, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}
	return Parse(data)
}

// Parse strictly decodes a JSON array of questions. Unknown fields, type
// mismatches, trailing documents and schema violations are all reported as
// *MalformedDataError; no partial result is returned.
func Parse(data []byte) ([]Question, error) {
	records, err := parseArray(data)
	if err != nil {
		return nil, &MalformedDataError{Err: err}
	}
	questions := make([]Question, 0, len(records))
	for i, record := range records {
		question, err := parseRecord(record)
		if err != nil {
			return nil, &MalformedDataError{Err: fmt.Errorf("questions[%d]: %w", i, err)}
		}
		questions = append(questions, question)
	}
	if err := Validate(questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func parseArray(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("parse json: empty document")
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("parse json: expected an array of questions")
	}
	var records []json.RawMessage
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return records, nil
}

func parseRecord(record json.RawMessage) (Question, error) {
	trimmed := bytes.TrimSpace(record)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Question{}, fmt.Errorf("expected an object")
	}
	if err := checkKeys(trimmed); err != nil {
		return Question{}, err
	}
	var question Question
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&question); err != nil {
		return Question{}, err
	}
	return question, nil
}

// recordKeys are the exact JSON keys of a question record.
var recordKeys = map[string]bool{
	"id":       true,
	"question": true,
	"kind":     true,
	"answers":  true,
}

// checkKeys rejects keys that encoding/json would otherwise accept: names
// matching a field only case-insensitively and repeated keys.
func checkKeys(record []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(record))
	if _, err := decoder.Token(); err != nil {
		return err
	}
	seen := map[string]bool{}
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		key, _ := token.(string)
		if !recordKeys[key] {
			return fmt.Errorf("unknown field %q", key)
		}
		if seen[key] {
			return fmt.Errorf("duplicate field %q", key)
		}
		seen[key] = true
		var value json.RawMessage
		if err := decoder.Decode(&value); err != nil {
			return err
		}
	}
	return nil
}
