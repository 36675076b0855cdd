package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshalStrict(t *testing.T) {
	var s sample
	err := UnmarshalStrict([]byte("name: deck\ncount: 3\n"), &s)
	if err != nil {
		t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
	}
	if s.Name != "deck" || s.Count != 3 {
		t.Errorf("got %+v, want {deck 3}", s)
	}
}

func TestUnmarshalStrict_UnknownField(t *testing.T) {
	var s sample
	err := UnmarshalStrict([]byte("name: deck\nbogus: 1\n"), &s)
	if err == nil {
		t.Fatal("unknown field should be rejected in strict mode")
	}
}

func TestUnmarshalStrict_InvalidYAML(t *testing.T) {
	var s sample
	err := UnmarshalStrict([]byte("name: [unclosed"), &s)
	if err == nil {
		t.Fatal("invalid YAML should return an error")
	}
}

func TestUnmarshalStrict_InputValidation(t *testing.T) {
	var s sample

	if err := UnmarshalStrict(nil, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("nil data error = %v, want ErrNilData", err)
	}
	if err := UnmarshalStrict([]byte{}, &s); !errors.Is(err, ErrNilData) {
		t.Errorf("empty data error = %v, want ErrNilData", err)
	}
	if err := UnmarshalStrict([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil destination error = %v, want ErrNilDestination", err)
	}

	big := []byte("name: " + strings.Repeat("x", MaxInputSize))
	if err := UnmarshalStrict(big, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized input error = %v, want ErrInputTooLarge", err)
	}
}
