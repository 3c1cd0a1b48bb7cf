// Package blobber generates test-fixture data: byte slices and strings of an
// exact requested length, built by repeating a template, numbering
// repetitions, or drawing from a small deterministic PRNG.
//
// The PRNG is a Middle Square Weyl Sequence generator on 8-bit state. It is
// fast to seed and fully reproducible, and it is NOT suitable for anything
// security related.
//
// Example usage:
//
//	blob := blobber.SeededBlob(1024, 42)
//
//	text, err := blobber.FillText(1024, "junk", true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := blobber.Generate(blobber.Config{
//	    Mode:     blobber.TemplateMode,
//	    Length:   1024,
//	    Template: []byte{1, 2, 3},
//	})
package blobber

import (
	"errors"
	"fmt"

	"github.com/FreeMasen/blobber/internal"
)

// ErrInvalidTemplate is returned when a repetition-based generator is given
// an empty template.
var ErrInvalidTemplate = errors.New("blobber: template must not be empty")

// Mode selects how Generate produces its output.
type Mode int

const (
	// RandomMode draws bytes from the 8-bit MSWS Generator.
	RandomMode Mode = iota

	// TemplateMode repeats Config.Template as raw bytes.
	TemplateMode

	// TextMode repeats Config.Template as text, optionally numbered.
	TextMode

	// LoremMode repeats the "Lorem ipsum" paragraph, optionally numbered.
	LoremMode

	// Blake2Mode draws bytes from a Blake2Source keyed by Config.Template.
	Blake2Mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case RandomMode:
		return "RandomMode"
	case TemplateMode:
		return "TemplateMode"
	case TextMode:
		return "TextMode"
	case LoremMode:
		return "LoremMode"
	case Blake2Mode:
		return "Blake2Mode"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// ParseMode converts a lower-case mode name ("random", "template", "text",
// "lorem" or "blake2") to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "random":
		return RandomMode, nil
	case "template":
		return TemplateMode, nil
	case "text":
		return TextMode, nil
	case "lorem":
		return LoremMode, nil
	case "blake2":
		return Blake2Mode, nil
	default:
		return 0, fmt.Errorf("blobber: unknown mode: %s", name)
	}
}

// Flags modifies the behaviour of a Mode.
type Flags uint32

const (
	// FlagDefault applies no modifiers.
	FlagDefault Flags = 0

	// FlagNumbered prefixes every repetition with its index in TextMode
	// and LoremMode.
	FlagNumbered Flags = 1 << 0

	// FlagTimeSeed makes RandomMode ignore Config.Seed and seed from the
	// current time instead.
	FlagTimeSeed Flags = 1 << 1
)

// Config describes a fixture to generate.
type Config struct {
	// Mode determines how bytes are produced.
	Mode Mode

	// Flags specifies mode modifiers.
	Flags Flags

	// Length is the exact output length in bytes. Must not be negative.
	Length int

	// Seed seeds the Generator in RandomMode.
	Seed byte

	// Template is repeated in TemplateMode and TextMode, and seeds the
	// source in Blake2Mode. Required for TemplateMode and TextMode.
	Template []byte
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Length < 0 {
		return fmt.Errorf("blobber: length must not be negative: %d", c.Length)
	}

	switch c.Mode {
	case TemplateMode, TextMode:
		if len(c.Template) == 0 {
			return ErrInvalidTemplate
		}
	case RandomMode, LoremMode, Blake2Mode:
	default:
		return fmt.Errorf("blobber: invalid mode: %v", c.Mode)
	}

	return nil
}

// Generate produces the fixture described by config. It returns either
// exactly config.Length bytes or an error.
func Generate(config Config) ([]byte, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	traceLog("generate mode=%s flags=%d length=%d", config.Mode, config.Flags, config.Length)

	numbered := config.Flags&FlagNumbered != 0

	switch config.Mode {
	case TemplateMode:
		return FillFromTemplate(config.Length, config.Template)
	case TextMode:
		s, err := FillText(config.Length, string(config.Template), numbered)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case LoremMode:
		return []byte(Lorem(config.Length, numbered)), nil
	case Blake2Mode:
		return FillBlob(config.Length, NewBlake2Source(config.Template)), nil
	default:
		var g *Generator
		if config.Flags&FlagTimeSeed != 0 {
			g = NewTimeSeeded()
		} else {
			g = New(config.Seed)
		}
		data := FillBlob(config.Length, g)
		traceState("generator after fill", g)
		return data, nil
	}
}

// Fingerprint returns the Blake2b-256 digest of data. It identifies a
// generated fixture without having to store or print it.
func Fingerprint(data []byte) [32]byte {
	return internal.Blake2b256(data)
}
