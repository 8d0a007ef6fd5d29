package lights

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raykernel/pkg/core"
)

func TestAmbient_Radiance(t *testing.T) {
	ambient := NewAmbient(core.NewColor(255, 0, 51), 0.5)

	expected := core.NewVec3(0.5, 0, 0.1)
	if got := ambient.Radiance(); !got.NearlyEqual(expected, 1e-12) {
		t.Errorf("Expected radiance %v, got %v", expected, got)
	}
	if ambient.Type() != LightTypeAmbient {
		t.Errorf("Expected type %s, got %s", LightTypeAmbient, ambient.Type())
	}
}

func TestPoint_Sample(t *testing.T) {
	light := NewPoint(core.NewVec3(0, 4, 0), core.White, 2.0)

	sample, ok := light.Sample(core.NewVec3(0, 0, 0))
	if !ok {
		t.Fatal("Expected valid sample")
	}
	if !sample.Direction.NearlyEqual(core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected direction (0, 1, 0), got %v", sample.Direction)
	}
	if _, err := core.NewRay(core.NewVec3(0, 0, 0), sample.Direction); err != nil {
		t.Errorf("Expected shadow direction to be accepted by NewRay: %v", err)
	}
	if math.Abs(sample.Distance-4) > 1e-12 {
		t.Errorf("Expected distance 4, got %f", sample.Distance)
	}
	if !sample.Radiance.NearlyEqual(core.NewVec3(2, 2, 2), 1e-12) {
		t.Errorf("Expected radiance (2, 2, 2), got %v", sample.Radiance)
	}

	if _, ok := light.Sample(core.NewVec3(0, 4, 0)); ok {
		t.Error("Expected no sample when the shading point is at the light")
	}
}

func TestLight_Validate(t *testing.T) {
	tests := []struct {
		name    string
		light   Light
		wantErr bool
	}{
		{"ambient ok", NewAmbient(core.White, 0.1), false},
		{"ambient zero intensity", NewAmbient(core.White, 0), false},
		{"ambient negative", NewAmbient(core.White, -1), true},
		{"point ok", NewPoint(core.NewVec3(1, 2, 3), core.White, 100), false},
		{"point NaN intensity", NewPoint(core.NewVec3(1, 2, 3), core.White, math.NaN()), true},
		{"point infinite origin", NewPoint(core.NewVec3(math.Inf(1), 0, 0), core.White, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.light.Validate()
			if tt.wantErr && !errors.Is(err, core.ErrConfiguration) {
				t.Errorf("Expected ErrConfiguration, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}
