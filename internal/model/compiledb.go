package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// Compilation database field names.
const (
	FieldCommand   = "command"
	FieldArguments = "arguments"
	FieldFile      = "file"
	FieldDirectory = "directory"
)

// ErrNotObject is returned when a compilation database record is not a JSON object.
var ErrNotObject = errors.New("compilation entry is not a JSON object")

type entryField struct {
	key   string
	value json.RawMessage
}

// CompilationEntry is one compile_commands.json record. Fields keep the
// order they were read in so a rewrite only touches what changed.
type CompilationEntry struct {
	fields []entryField
}

// NewCompilationEntry builds an entry from the common fields, in the
// order clang tooling writes them.
func NewCompilationEntry(directory, command, file string) CompilationEntry {
	var entry CompilationEntry
	if directory != "" {
		entry.setString(FieldDirectory, directory)
	}

	entry.setString(FieldCommand, command)
	entry.setString(FieldFile, file)

	return entry
}

// Keys returns the field names in order.
func (e CompilationEntry) Keys() []string {
	keys := make([]string, 0, len(e.fields))
	for _, f := range e.fields {
		keys = append(keys, f.key)
	}

	return keys
}

// File is the translation unit the entry compiles.
func (e CompilationEntry) File() string {
	value, _ := e.stringField(FieldFile)
	return value
}

// Command returns the single-string command line, if present.
func (e CompilationEntry) Command() (string, bool) {
	return e.stringField(FieldCommand)
}

// SetCommand replaces the command line, keeping the field position.
func (e *CompilationEntry) SetCommand(command string) {
	e.setString(FieldCommand, command)
}

// Arguments returns the pre-tokenized command line, if present.
func (e CompilationEntry) Arguments() ([]string, bool) {
	raw, ok := e.raw(FieldArguments)
	if !ok {
		return nil, false
	}

	result := gjson.ParseBytes(raw)
	if !result.IsArray() {
		return nil, false
	}

	args := make([]string, 0, len(result.Array()))
	for _, arg := range result.Array() {
		args = append(args, arg.String())
	}

	return args, true
}

// SetArguments replaces the argument list, keeping the field position.
func (e *CompilationEntry) SetArguments(args []string) {
	e.set(FieldArguments, marshalNoEscape(args))
}

// UnmarshalJSON reads the object fields in document order.
func (e *CompilationEntry) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON in compilation entry")
	}

	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return ErrNotObject
	}

	fields := make([]entryField, 0, 4)
	result.ForEach(func(key, value gjson.Result) bool {
		fields = append(fields, entryField{key: key.String(), value: json.RawMessage(value.Raw)})
		return true
	})

	e.fields = fields

	return nil
}

// MarshalJSON writes the fields back in the order they were read.
func (e CompilationEntry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, f := range e.fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (e CompilationEntry) raw(key string) (json.RawMessage, bool) {
	for _, f := range e.fields {
		if f.key == key {
			return f.value, true
		}
	}

	return nil, false
}

func (e CompilationEntry) stringField(key string) (string, bool) {
	raw, ok := e.raw(key)
	if !ok {
		return "", false
	}

	result := gjson.ParseBytes(raw)
	if result.Type != gjson.String {
		return "", false
	}

	return result.String(), true
}

func (e *CompilationEntry) setString(key, value string) {
	e.set(key, marshalNoEscape(value))
}

// marshalNoEscape encodes v without HTML escaping, shell operators such as
// "&&" stay readable in command lines.
func marshalNoEscape(v any) json.RawMessage {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)

	return bytes.TrimRight(buf.Bytes(), "\n")
}

func (e *CompilationEntry) set(key string, raw json.RawMessage) {
	for i := range e.fields {
		if e.fields[i].key == key {
			e.fields[i].value = raw
			return
		}
	}

	e.fields = append(e.fields, entryField{key: key, value: raw})
}
