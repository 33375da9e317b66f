package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// ErrEmpty is returned when saving a session without commands
var ErrEmpty = errors.New("no commands to save")

// Compressed reports whether filename selects zstd compression
func Compressed(filename string) bool {
	return strings.HasSuffix(filename, ".zst")
}

// Encode writes data as indented JSON, zstd-compressed when compress is set
func Encode(w io.Writer, data Data, compress bool) error {
	if compress {
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("failed to create zstd writer: %w", err)
		}
		if err := encodeJSON(zw, data); err != nil {
			_ = zw.Close()
			return err
		}
		return zw.Close()
	}
	return encodeJSON(w, data)
}

func encodeJSON(w io.Writer, data Data) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads data written by Encode
func Decode(r io.Reader, compressed bool) (*Data, error) {
	if compressed {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	var data Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// Save writes the replay data to a file
func Save(filename string, data Data) error {
	if len(data.Commands) == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Encode(file, data, Compressed(filename)); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file, Compressed(filename))
}
