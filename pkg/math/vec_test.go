package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Sub(t *testing.T) {
	got := V2(3, 4).Sub(V2(1, 1))
	want := Vec2{2, 3}
	if got != want {
		t.Errorf("Vec2.Sub() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	if got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec2Cross(t *testing.T) {
	x := Vec2{1, 0}
	y := Vec2{0, 1}
	if got := x.Cross(y); got != 1 {
		t.Errorf("x.Cross(y) = %v, want 1", got)
	}
	if got := y.Cross(x); got != -1 {
		t.Errorf("y.Cross(x) = %v, want -1", got)
	}
}

func TestVec2Angle(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{Vec2{1, 0}, 0},
		{Vec2{0, 1}, math.Pi / 2},
		{Vec2{-1, 0}, math.Pi},
		{Vec2{0, -1}, -math.Pi / 2},
		{Vec2{-1, -1}, -3 * math.Pi / 4},
	}
	for _, tt := range tests {
		got := tt.v.Angle()
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%v.Angle() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestVec2IsFinite(t *testing.T) {
	if !V2(1, 2).IsFinite() {
		t.Error("expected (1,2) to be finite")
	}
	if V2(math.NaN(), 0).IsFinite() {
		t.Error("expected NaN to be non-finite")
	}
	if V2(0, math.Inf(-1)).IsFinite() {
		t.Error("expected -Inf to be non-finite")
	}
}

func TestCentroid(t *testing.T) {
	got := Centroid([]Vec2{{0, 0}, {4, 0}, {4, 2}, {0, 2}})
	want := Vec2{2, 1}
	if got != want {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
	if got := Centroid(nil); got != (Vec2{}) {
		t.Errorf("Centroid(nil) = %v, want zero", got)
	}
}
