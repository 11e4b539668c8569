package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		p := RandomInUnitSphere(rng)
		if p.LengthSquared() >= 1 {
			t.Fatalf("sample %d outside unit sphere: %v", i, p)
		}
	}
}

func TestRandomInHemisphere(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	normals := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(0.577, 0.577, 0.577),
	}

	for _, n := range normals {
		for i := 0; i < 500; i++ {
			dir := RandomInHemisphere(n, rng)
			if dir.Dot(n) <= 0 {
				t.Fatalf("direction %v fell below hemisphere for normal %v", dir, n)
			}
		}
	}
}

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)
	r := Reflect(v, n)

	got := r.Dot(n)
	want := -v.Dot(n)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Reflect(%v,%v).Dot(n) = %f, want %f", v, n, got, want)
	}
}

func TestRefractIdentityAtUnitRatio(t *testing.T) {
	uv := NewVec3(0.6, -0.8, 0).Normalize()
	n := NewVec3(0, 1, 0)

	got := Refract(uv, n, 1.0)
	if !got.Equals(uv) {
		t.Errorf("Refract(uv,n,1.0) = %v, want identity %v", got, uv)
	}
}

func TestAABBUnion(t *testing.T) {
	a := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 3, 2))

	u := a.Union(b)
	want := NewAABB(NewVec3(-1, -1, -1), NewVec3(2, 3, 2))
	if !u.Min.Equals(want.Min) || !u.Max.Equals(want.Max) {
		t.Errorf("Union = %v, want %v", u, want)
	}
}

func TestAABBHitEntersAtExpectedT(t *testing.T) {
	box := NewAABB(NewVec3(-0.5, -0.5, -0.5), NewVec3(0.5, 0.5, 0.5))
	ray := NewRay(NewVec3(-2, 0, 0), NewVec3(1, 0, 0))

	tEnter, ok := box.Hit(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(tEnter-1.5) > 1e-9 {
		t.Errorf("tEnter = %f, want 1.5", tEnter)
	}
}
