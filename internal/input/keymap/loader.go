package keymap

import (
	"fmt"
	"io"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// fileSchema is the TOML structure of a keymap file.
type fileSchema struct {
	Bindings []Binding `toml:"bindings"`
}

// LoadFile reads a batch of bindings from a TOML file. Decoding errors are
// returned as-is; spec validation happens later, at bind time.
func LoadFile(path string) ([]Binding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keymap file: %w", err)
	}
	defer f.Close()

	bindings, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("keymap file %s: %w", path, err)
	}
	return bindings, nil
}

// LoadReader reads a batch of bindings from TOML content.
func LoadReader(r io.Reader) ([]Binding, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading keymap: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding keymap: %w", err)
	}
	return file.Bindings, nil
}

// SaveFile writes a batch of bindings as TOML.
func SaveFile(path string, bindings []Binding) error {
	data, err := toml.Marshal(fileSchema{Bindings: bindings})
	if err != nil {
		return fmt.Errorf("encoding keymap: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing keymap file: %w", err)
	}
	return nil
}
