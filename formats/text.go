package formats

import (
	"fmt"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
)

// DecodeText turns raw file bytes into text. Valid UTF-8 (with or without a
// BOM) is used as is; anything else is decoded as Shift_JIS, the encoding of
// most content written for the original simulator.
func DecodeText(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}
	out, err := japanese.ShiftJIS.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding Shift_JIS: %w", err)
	}
	return string(out), nil
}

// ReadFile reads and decodes a configuration file.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	text, err := DecodeText(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return text, nil
}
