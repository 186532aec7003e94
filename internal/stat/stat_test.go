package stat

import (
	"errors"
	"quest-chronicles/internal/gameerr"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Effect
	}{
		{"health:20", Effect{Health, 20}},
		{"strength:-3", Effect{Strength, -3}},
		{"max_health: 10", Effect{MaxHealth, 10}},
		{"luck:4", Effect{Name("luck"), 4}},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %+v; want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "health", "health:20:5", "health:twenty", "magic:"} {
		_, err := Parse(in)
		if !errors.Is(err, gameerr.ErrInvalidEffectFormat) {
			t.Errorf("Parse(%q) error = %v; want InvalidEffectFormat", in, err)
		}
	}
}

func TestKnown(t *testing.T) {
	for _, n := range []Name{Health, MaxHealth, Strength, Magic} {
		if !n.Known() {
			t.Errorf("%s should be known", n)
		}
	}
	if Name("luck").Known() {
		t.Error("luck should not be known")
	}
}

func TestInverseAndString(t *testing.T) {
	e := Effect{Strength, 5}
	if got := e.Inverse(); got != (Effect{Strength, -5}) {
		t.Errorf("Inverse = %+v", got)
	}
	if e.String() != "strength:5" {
		t.Errorf("String = %q", e.String())
	}
}

func TestYAMLUsesDescriptorForm(t *testing.T) {
	type holder struct {
		Effect Effect `yaml:"effect"`
	}
	out, err := yaml.Marshal(holder{Effect{MaxHealth, 10}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), "max_health:10") {
		t.Errorf("yaml = %q", out)
	}

	var h holder
	if err := yaml.Unmarshal([]byte("effect: magic:-2\n"), &h); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if h.Effect != (Effect{Magic, -2}) {
		t.Errorf("decoded %+v", h.Effect)
	}
	if err := yaml.Unmarshal([]byte("effect: magic\n"), &h); err == nil {
		t.Error("expected malformed descriptor to fail decoding")
	}
}
