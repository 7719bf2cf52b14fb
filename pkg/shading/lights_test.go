package shading

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/geometry"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/scene"
)

func TestSelectLightBounds(t *testing.T) {
	tests := []struct {
		name       string
		lightCount int
		u          float64
		expected   int
	}{
		{"first light", 4, 0.0, 0},
		{"last light", 4, 0.999999, 3},
		{"middle", 4, 0.5, 2},
		{"single light", 1, 0.7, 0},
		{"rounding at boundary", 3, 0.9999999999999999, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectLight(tt.lightCount, tt.u); got != tt.expected {
				t.Errorf("SelectLight(%d, %f): got %d, expected %d", tt.lightCount, tt.u, got, tt.expected)
			}
		})
	}
}

func TestSelectLightUniformity(t *testing.T) {
	const lightCount = 5
	const trials = 100000

	random := rand.New(rand.NewSource(42))
	counts := make([]int, lightCount)
	for i := 0; i < trials; i++ {
		counts[SelectLight(lightCount, random.Float64())]++
	}

	expected := float64(trials) / lightCount
	for i, count := range counts {
		// 3% relative tolerance is ~6 sigma at this sample count
		if math.Abs(float64(count)-expected) > 0.03*expected {
			t.Errorf("light %d selected %d times, expected ~%.0f", i, count, expected)
		}
	}
}

func TestDirectionToward(t *testing.T) {
	point := core.NewVec3(1, 0, 0)
	lightPos := core.NewVec3(1, 5, 0)

	dir := DirectionToward(point, lightPos)
	if dir != core.NewVec3(0, 1, 0) {
		t.Errorf("direction: got %v, expected (0,1,0)", dir)
	}
	if math.Abs(dir.Length()-1.0) > 1e-12 {
		t.Errorf("direction not unit length: %f", dir.Length())
	}
}

func TestSampleLightDirection(t *testing.T) {
	// Scene with a single emissive sphere above the origin
	sc := &scene.Scene{
		Materials: []scene.Material{
			{Color: core.NewVec3(0.5, 0.5, 0.5)},
			{Color: core.NewVec3(1, 1, 1), Emittance: 5},
		},
		Geometry: []geometry.Primitive{
			geometry.NewSphere(core.NewVec3(0, 0, 0), 1, 0),
			geometry.NewSphere(core.NewVec3(0, 10, 0), 1, 1),
		},
	}
	if err := sc.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	dir, ok := SampleLightDirection(sc.Lights(), core.NewVec3(0, 0, 0), 0.5)
	if !ok {
		t.Fatal("expected a light direction")
	}
	if dir != core.NewVec3(0, 1, 0) {
		t.Errorf("direction: got %v, expected (0,1,0)", dir)
	}
}

func TestSampleLightDirectionNoLights(t *testing.T) {
	sc := &scene.Scene{
		Materials: []scene.Material{{Color: core.NewVec3(0.5, 0.5, 0.5)}},
		Geometry:  []geometry.Primitive{geometry.NewSphere(core.NewVec3(0, 0, 0), 1, 0)},
	}
	if err := sc.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if _, ok := SampleLightDirection(sc.Lights(), core.NewVec3(0, 0, 0), 0.5); ok {
		t.Error("expected no light direction from a scene without lights")
	}
}
