package core

import (
	"errors"
	"testing"
)

func TestNewRay_RequiresUnitDirection(t *testing.T) {
	tests := []struct {
		name      string
		direction Vec3
		wantErr   bool
	}{
		{"unit z", NewVec3(0, 0, 1), false},
		{"normalized diagonal", NewVec3(1, 1, 1).MustNormalize(), false},
		{"too long", NewVec3(0, 0, 2), true},
		{"zero", NewVec3(0, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray, err := NewRay(NewVec3(1, 2, 3), tt.direction)
			if tt.wantErr {
				if !errors.Is(err, ErrDegenerateVector) {
					t.Errorf("Expected ErrDegenerateVector, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if ray.Direction != tt.direction {
				t.Errorf("Direction was modified: expected %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray, err := NewRay(NewVec3(1, 0, 0), NewVec3(0, 1, 0))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		t        float64
		expected Vec3
	}{
		{0, NewVec3(1, 0, 0)},
		{2.5, NewVec3(1, 2.5, 0)},
		{-1, NewVec3(1, -1, 0)},
	}

	for _, tt := range tests {
		if got := ray.At(tt.t); !got.NearlyEqual(tt.expected, 1e-12) {
			t.Errorf("At(%f): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRayTowards(t *testing.T) {
	ray, err := RayTowards(NewVec3(0, 0, 0), NewVec3(0, 0, 10))
	if err != nil {
		t.Fatal(err)
	}
	if !ray.Direction.NearlyEqual(NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected direction (0, 0, 1), got %v", ray.Direction)
	}

	if _, err := RayTowards(NewVec3(1, 1, 1), NewVec3(1, 1, 1)); !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector for coincident points, got %v", err)
	}
}
