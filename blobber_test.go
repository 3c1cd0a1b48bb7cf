package blobber

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
)

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{RandomMode, "RandomMode"},
		{TemplateMode, "TemplateMode"},
		{TextMode, "TextMode"},
		{LoremMode, "LoremMode"},
		{Blake2Mode, "Blake2Mode"},
		{Mode(99), "Mode(99)"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
		is      error
	}{
		{
			name:    "random_default",
			config:  Config{Length: 10},
			wantErr: false,
		},
		{
			name:    "negative_length",
			config:  Config{Length: -1},
			wantErr: true,
		},
		{
			name:    "invalid_mode",
			config:  Config{Mode: Mode(42), Length: 1},
			wantErr: true,
		},
		{
			name:    "template_missing",
			config:  Config{Mode: TemplateMode, Length: 1},
			wantErr: true,
			is:      ErrInvalidTemplate,
		},
		{
			name:    "text_missing",
			config:  Config{Mode: TextMode, Length: 1},
			wantErr: true,
			is:      ErrInvalidTemplate,
		},
		{
			name:    "template_zero_length",
			config:  Config{Mode: TemplateMode, Template: []byte{1}},
			wantErr: false,
		},
		{
			name:    "lorem_without_template",
			config:  Config{Mode: LoremMode, Length: 1, Flags: FlagNumbered},
			wantErr: false,
		},
		{
			name:    "blake2_empty_seed",
			config:  Config{Mode: Blake2Mode, Length: 1},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Validate() error = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   []byte
	}{
		{
			name:   "random",
			config: Config{Mode: RandomMode, Length: 64, Seed: 42},
			want:   SeededBlob(64, 42),
		},
		{
			name:   "template",
			config: Config{Mode: TemplateMode, Length: 6, Template: []byte{1, 2, 3}},
			want:   []byte{1, 2, 3, 1, 2, 3},
		},
		{
			name:   "text",
			config: Config{Mode: TextMode, Length: 10, Template: []byte("junk")},
			want:   []byte("junkjunkju"),
		},
		{
			name:   "text_numbered",
			config: Config{Mode: TextMode, Flags: FlagNumbered, Length: 12, Template: []byte("test")},
			want:   []byte("0. test1. te"),
		},
		{
			name:   "lorem",
			config: Config{Mode: LoremMode, Length: 11},
			want:   []byte("Lorem ipsum"),
		},
		{
			name:   "blake2",
			config: Config{Mode: Blake2Mode, Length: 8, Template: []byte("blobber")},
			want:   []byte{58, 129, 65, 74, 183, 60, 194, 92},
		},
		{
			name:   "empty",
			config: Config{Mode: RandomMode, Seed: 1},
			want:   []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.config)
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Generate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateTimeSeed(t *testing.T) {
	got, err := Generate(Config{Mode: RandomMode, Flags: FlagTimeSeed, Length: 256})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(got) != 256 {
		t.Errorf("len = %d, want 256", len(got))
	}
}

func TestGenerateInvalid(t *testing.T) {
	_, err := Generate(Config{Mode: TemplateMode, Length: 10})
	if !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("Generate() error = %v, want ErrInvalidTemplate", err)
	}

	_, err = Generate(Config{Length: -10})
	if err == nil || !strings.HasPrefix(err.Error(), "blobber:") {
		t.Errorf("Generate() error = %v, want a blobber: error", err)
	}
}

func TestFingerprint(t *testing.T) {
	tests := []struct {
		input []byte
		want  string
	}{
		{nil, "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
		{[]byte("hello"), "324dcf027dd4a30a932c441f365a25e86b173defa4b8e58948253471b81b72cf"},
	}

	for _, tt := range tests {
		got := Fingerprint(tt.input)
		if hex.EncodeToString(got[:]) != tt.want {
			t.Errorf("Fingerprint(%q) = %x, want %s", tt.input, got, tt.want)
		}
	}
}
