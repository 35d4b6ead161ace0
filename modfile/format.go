package modfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Format is a module loader.
type Format interface {
	Name() string

	// Identify reports whether the data looks like this format.
	// It should be cheap, the data is not fully validated.
	Identify(data []byte) bool

	Load(data []byte) (*Module, error)
}

var ErrUnknownFormat = errors.New("unknown module format")

var formats = []Format{
	xmFormat{},
	modFormat{},
	yamlFormat{},
}

// Formats returns all registered loaders in the probing order.
func Formats() []Format {
	list := make([]Format, len(formats))
	copy(list, formats)
	return list
}

// Detect returns the first format that recognizes the data.
func Detect(data []byte) (Format, error) {
	for _, f := range formats {
		if f.Identify(data) {
			return f, nil
		}
	}
	return nil, ErrUnknownFormat
}

// Load reads the module data and parses it with a detected format.
func Load(r io.Reader) (*Module, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	f, err := Detect(data)
	if err != nil {
		return nil, err
	}
	m, err := f.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name(), err)
	}
	return m, nil
}

type modFormat struct{}

func (modFormat) Name() string { return "mod" }

func (modFormat) Identify(data []byte) bool {
	if len(data) < modHeaderSize {
		return false
	}
	return modChannelsByMagic(data[modMagicOffset:modHeaderSize]) != 0
}

func (modFormat) Load(data []byte) (*Module, error) { return parseMOD(data) }

type xmFormat struct{}

func (xmFormat) Name() string { return "xm" }

func (xmFormat) Identify(data []byte) bool { return isXM(data) }

func (xmFormat) Load(data []byte) (*Module, error) { return parseXM(data) }

type yamlFormat struct{}

func (yamlFormat) Name() string { return "yaml" }

func (yamlFormat) Identify(data []byte) bool {
	// Only look at the top-level keys, the tag line can be anywhere among them.
	for len(data) != 0 {
		var line []byte
		line, data, _ = bytes.Cut(data, []byte("\n"))
		line = bytes.TrimRight(line, "\r")
		key, value, ok := bytes.Cut(line, []byte(":"))
		if !ok || bytes.HasPrefix(key, []byte(" ")) {
			continue
		}
		if string(bytes.TrimSpace(key)) == "format" {
			return string(bytes.Trim(bytes.TrimSpace(value), `"'`)) == YAMLFormatTag
		}
	}
	return false
}

func (yamlFormat) Load(data []byte) (*Module, error) { return parseYAML(data) }
