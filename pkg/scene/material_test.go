package scene

import (
	"testing"

	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
)

func TestMaterialValidateClampsReflective(t *testing.T) {
	tests := []struct {
		name     string
		in       float64
		expected float64
	}{
		{"below range", -0.5, 0},
		{"above range", 1.5, 1},
		{"in range", 0.3, 0.3},
		{"exactly one", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Material{Color: core.NewVec3(1, 1, 1), Reflective: tt.in}
			if err := m.Validate(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.Reflective != tt.expected {
				t.Errorf("reflective: got %f, expected %f", m.Reflective, tt.expected)
			}
		})
	}
}

func TestMaterialValidateRejectsBadData(t *testing.T) {
	m := Material{SpecularExponent: -1}
	if err := m.Validate(); err == nil {
		t.Error("expected error for negative specular exponent")
	}

	m = Material{Emittance: -2}
	if err := m.Validate(); err == nil {
		t.Error("expected error for negative emittance")
	}
}

func TestMaterialEmission(t *testing.T) {
	m := Material{Color: core.NewVec3(1, 0.5, 0.25), Emittance: 4}
	if !m.IsEmissive() {
		t.Error("expected emissive material")
	}
	if got := m.Emitted(); got != core.NewVec3(4, 2, 1) {
		t.Errorf("emitted: got %v, expected (4,2,1)", got)
	}

	m = Material{Color: core.NewVec3(1, 1, 1)}
	if m.IsEmissive() {
		t.Error("expected non-emissive material")
	}
}
