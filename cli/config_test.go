package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func TestLoad(t *testing.T) {
	const doc = `
log-format: json
log:
  level: debug
  time_layout: Kitchen
  caller: true
pprof:
  dir: /tmp/prof
retries: 3
ratio: 0.5
`

	r, err := load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	tests := []struct {
		flag string
		want any
	}{
		{"log-format", "json"},
		{"log-level", "debug"},
		{"log-time-layout", "Kitchen"},
		{"log-caller", true},
		{"pprof-dir", "/tmp/prof"},
		{"retries", "3"},
		{"ratio", "0.5"},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			got, err := r.Resolve(nil, nil, &kong.Flag{Value: &kong.Value{Name: tt.flag}})
			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Errorf("Resolve(%q) = %v (%T), want %v", tt.flag, got, got, tt.want)
			}
		})
	}
}

func TestLoad_Empty(t *testing.T) {
	r, err := load(strings.NewReader(""))
	if err != nil {
		t.Fatalf("load() error = %v", err)
	}

	if err := r.Validate(nil); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad_Invalid(t *testing.T) {
	_, err := load(strings.NewReader("log: [unclosed"))
	if !errors.Is(err, ErrConfig) {
		t.Errorf("load() error = %v, want %v", err, ErrConfig)
	}
}
