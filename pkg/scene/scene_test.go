package scene

import (
	"math"
	"testing"

	"github.com/jfl07/go-wavefront-pathtracer/pkg/core"
	"github.com/jfl07/go-wavefront-pathtracer/pkg/geometry"
)

func TestSceneHitClosest(t *testing.T) {
	s := &Scene{
		Materials: []Material{{Color: core.NewVec3(1, 1, 1)}},
		Geometry: []geometry.Primitive{
			geometry.NewSphere(core.NewVec3(0, 0, -10), 1, 0),
			geometry.NewSphere(core.NewVec3(0, 0, -5), 1, 0),
		},
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	isect, ok := s.Hit(ray, 0.001, 1000)
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(isect.T-4.0) > 1e-9 {
		t.Errorf("t: got %f, expected 4 (the closer sphere)", isect.T)
	}
}

func TestSceneFinalizeBadMaterialReference(t *testing.T) {
	s := &Scene{
		Materials: []Material{{Color: core.NewVec3(1, 1, 1)}},
		Geometry: []geometry.Primitive{
			geometry.NewSphere(core.NewVec3(0, 0, 0), 1, 5),
		},
	}
	if err := s.Finalize(); err == nil {
		t.Error("expected error for out-of-range material reference")
	}
}

func TestLightViewOrdering(t *testing.T) {
	s := &Scene{
		Materials: []Material{
			{Color: core.NewVec3(1, 1, 1)},
			{Color: core.NewVec3(1, 1, 1), Emittance: 1},
		},
		Geometry: []geometry.Primitive{
			geometry.NewSphere(core.NewVec3(0, 0, 0), 1, 0),
			geometry.NewSphere(core.NewVec3(1, 0, 0), 1, 1),
			geometry.NewSphere(core.NewVec3(2, 0, 0), 1, 0),
			geometry.NewSphere(core.NewVec3(3, 0, 0), 1, 1),
		},
	}
	if err := s.Finalize(); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	lights := s.Lights()
	if lights.Count() != 2 {
		t.Fatalf("light count: got %d, expected 2", lights.Count())
	}
	if lights.GeometryIndex(0) != 1 || lights.GeometryIndex(1) != 3 {
		t.Errorf("light indices: got %d,%d, expected 1,3", lights.GeometryIndex(0), lights.GeometryIndex(1))
	}
	if lights.Position(1) != core.NewVec3(3, 0, 0) {
		t.Errorf("light position: got %v", lights.Position(1))
	}
}
