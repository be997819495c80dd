package core

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{3, 4}
	b := Vec2{-1, 2}

	if got := a.Add(b); got != (Vec2{2, 6}) {
		t.Errorf("Add() = %v, expected {2 6}", got)
	}
	if got := a.Sub(b); got != (Vec2{4, 2}) {
		t.Errorf("Sub() = %v, expected {4 2}", got)
	}
	if got := a.Scale(2); got != (Vec2{6, 8}) {
		t.Errorf("Scale() = %v, expected {6 8}", got)
	}
	if got := a.Len(); !almostEqual(got, 5) {
		t.Errorf("Len() = %f, expected 5", got)
	}
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec2
		angle    float64
		expected Vec2
	}{
		{"identity", Vec2{1, 0}, 0, Vec2{1, 0}},
		{"quarter turn", Vec2{1, 0}, math.Pi / 2, Vec2{0, 1}},
		{"half turn", Vec2{0, -1}, math.Pi, Vec2{0, 1}},
		{"negative quarter", Vec2{1, 0}, -math.Pi / 2, Vec2{0, -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Rotate(tc.angle)
			if !almostEqual(got.X, tc.expected.X) || !almostEqual(got.Y, tc.expected.Y) {
				t.Errorf("Rotate(%f) = %v, expected %v", tc.angle, got, tc.expected)
			}
		})
	}
}

func TestVec2RotatePreservesLength(t *testing.T) {
	v := Vec2{7, -13}
	for _, angle := range []float64{0.3, 1.7, -2.9, 6.1} {
		r := v.Rotate(angle)
		if !almostEqual(r.Len(), v.Len()) {
			t.Errorf("Rotate(%f) changed length from %f to %f", angle, v.Len(), r.Len())
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{math.Pi / 4, math.Pi / 4},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, -math.Pi / 2},
		{5 * math.Pi / 2, math.Pi / 2},
	}

	for _, tc := range tests {
		if got := NormalizeAngle(tc.in); !almostEqual(got, tc.expected) {
			t.Errorf("NormalizeAngle(%f) = %f, expected %f", tc.in, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 10, 0.5); !almostEqual(got, 5) {
		t.Errorf("Lerp(0, 10, 0.5) = %f, expected 5", got)
	}
	if got := Lerp(10, 20, 0); !almostEqual(got, 10) {
		t.Errorf("Lerp(10, 20, 0) = %f, expected 10", got)
	}
	if got := Lerp(10, 20, 1); !almostEqual(got, 20) {
		t.Errorf("Lerp(10, 20, 1) = %f, expected 20", got)
	}
}

func TestMinMaxClamp(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min is wrong")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max is wrong")
	}
	if Clamp(-1, 0, 10) != 0 || Clamp(11, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp is wrong")
	}
}
