package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestSampleCosineHemisphereUnitAndSameSide(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 0, 1),
		NewVec3(0, -1, 0),
		NewVec3(1, 1, 1).Normalize(), // all components at the sqrt(1/3) threshold
		NewVec3(-0.3, 0.8, 0.2).Normalize(),
	}

	random := rand.New(rand.NewSource(42))
	for _, normal := range normals {
		for i := 0; i < 2000; i++ {
			d := SampleCosineHemisphere(normal, NewVec2(random.Float64(), random.Float64()))

			if math.Abs(d.Length()-1.0) > 1e-9 {
				t.Fatalf("normal %v: direction not unit length: %f", normal, d.Length())
			}
			if d.Dot(normal) < -1e-9 {
				t.Fatalf("normal %v: direction below hemisphere: dot = %f", normal, d.Dot(normal))
			}
		}
	}
}

func TestSampleCosineHemisphereDistribution(t *testing.T) {
	// For a cosine-weighted density, cos²(theta) is uniform in [0,1]
	// (cosTheta = sqrt(u1)), and E[cos(theta)] = 2/3
	normal := NewVec3(0, 1, 0)
	random := rand.New(rand.NewSource(7))

	const samples = 100000
	const bins = 10
	histogram := make([]int, bins)
	sumCos := 0.0

	for i := 0; i < samples; i++ {
		d := SampleCosineHemisphere(normal, NewVec2(random.Float64(), random.Float64()))
		cosTheta := d.Dot(normal)
		sumCos += cosTheta

		bin := int(cosTheta * cosTheta * bins)
		if bin >= bins {
			bin = bins - 1
		}
		histogram[bin]++
	}

	meanCos := sumCos / samples
	if math.Abs(meanCos-2.0/3.0) > 0.01 {
		t.Errorf("mean cos(theta): got %f, expected 2/3", meanCos)
	}

	// Chi-square goodness of fit against the uniform cos² distribution.
	// 99.9th percentile for 9 degrees of freedom is ~27.9.
	expected := float64(samples) / bins
	chiSquare := 0.0
	for _, observed := range histogram {
		diff := float64(observed) - expected
		chiSquare += diff * diff / expected
	}
	if chiSquare > 27.9 {
		t.Errorf("cos² histogram not uniform: chi-square = %f, histogram = %v", chiSquare, histogram)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		n        Vec3
		expected Vec3
	}{
		{
			name:     "45 degrees onto floor",
			v:        NewVec3(1, -1, 0).Normalize(),
			n:        NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0).Normalize(),
		},
		{
			name:     "head on",
			v:        NewVec3(0, -1, 0),
			n:        NewVec3(0, 1, 0),
			expected: NewVec3(0, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.v, tt.n)
			if got.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Reflect: got %v, expected %v", got, tt.expected)
			}
			if math.Abs(got.Length()-tt.v.Length()) > 1e-12 {
				t.Errorf("Reflect changed vector length: %f vs %f", got.Length(), tt.v.Length())
			}
		})
	}
}
