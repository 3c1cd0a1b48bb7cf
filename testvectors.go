package blobber

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
)

// TestVector is a single golden fixture. Expected holds the hex-encoded
// Blake2b-256 fingerprint of the fixture rather than the fixture itself.
type TestVector struct {
	Name        string `json:"name"`
	Mode        string `json:"mode"`
	Seed        uint8  `json:"seed,omitempty"`
	Length      int    `json:"length"`
	Template    string `json:"template,omitempty"`
	TemplateHex string `json:"template_hex,omitempty"` // Alternative hex-encoded template
	Numbered    bool   `json:"numbered,omitempty"`
	Expected    string `json:"expected"`
}

// TestVectorSuite contains all test vectors with metadata about their source.
type TestVectorSuite struct {
	Version     string       `json:"version"`
	Description string       `json:"description"`
	Vectors     []TestVector `json:"vectors"`
}

// LoadTestVectors loads test vectors from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadTestVectors(path string) (*TestVectorSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("blobber: failed to read test vectors: %w", err)
	}

	var suite TestVectorSuite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("blobber: failed to parse test vectors: %w", err)
	}

	return &suite, nil
}

// GetTemplate returns the decoded template bytes for a test vector.
// If TemplateHex is set, it decodes from hex, otherwise uses Template as UTF-8.
func (tv *TestVector) GetTemplate() ([]byte, error) {
	if tv.TemplateHex != "" {
		template, err := hex.DecodeString(tv.TemplateHex)
		if err != nil {
			return nil, fmt.Errorf("blobber: invalid template hex: %w", err)
		}
		return template, nil
	}
	return []byte(tv.Template), nil
}

// GetExpected returns the decoded expected fingerprint.
func (tv *TestVector) GetExpected() ([]byte, error) {
	expected, err := hex.DecodeString(tv.Expected)
	if err != nil {
		return nil, fmt.Errorf("blobber: invalid expected fingerprint: %w", err)
	}
	if len(expected) != 32 {
		return nil, fmt.Errorf("blobber: expected fingerprint must be 32 bytes, got %d", len(expected))
	}
	return expected, nil
}

// GetMode returns the Mode value for this test vector.
func (tv *TestVector) GetMode() (Mode, error) {
	return ParseMode(tv.Mode)
}

// Config builds the generation config described by the vector.
func (tv *TestVector) Config() (Config, error) {
	mode, err := tv.GetMode()
	if err != nil {
		return Config{}, err
	}
	template, err := tv.GetTemplate()
	if err != nil {
		return Config{}, err
	}

	config := Config{
		Mode:     mode,
		Length:   tv.Length,
		Seed:     tv.Seed,
		Template: template,
	}
	if tv.Numbered {
		config.Flags |= FlagNumbered
	}
	return config, nil
}

// Verify regenerates the fixture and compares its fingerprint with Expected.
func (tv *TestVector) Verify() error {
	config, err := tv.Config()
	if err != nil {
		return err
	}
	expected, err := tv.GetExpected()
	if err != nil {
		return err
	}

	data, err := Generate(config)
	if err != nil {
		return fmt.Errorf("blobber: vector %s: %w", tv.Name, err)
	}
	if len(data) != tv.Length {
		return fmt.Errorf("blobber: vector %s: length = %d, want %d", tv.Name, len(data), tv.Length)
	}

	got := Fingerprint(data)
	want := hex.EncodeToString(expected)
	actual := hex.EncodeToString(got[:])
	if !compareTrace(tv.Name, want, actual) {
		return fmt.Errorf("blobber: vector %s: fingerprint = %s, want %s", tv.Name, actual, want)
	}
	return nil
}
