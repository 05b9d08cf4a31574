package parallax

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestUnpackNormal(t *testing.T) {
	n := UnpackNormal(mgl32.Vec3{0.5, 0.5, 1})
	assertVec3(t, mgl32.Vec3{0, 0, 1}, n, 1e-6)

	n = UnpackNormal(mgl32.Vec3{1, 0.5, 0.5})
	assertVec3(t, mgl32.Vec3{1, 0, 0}, n, 1e-6)
	assert.InDelta(t, 1, UnpackNormal(mgl32.Vec3{0.2, 0.9, 0.7}).Len(), 1e-6)
}

func TestShadeHeadOn(t *testing.T) {
	albedo := mgl32.Vec3{1, 0.5, 0}
	up := mgl32.Vec3{0, 0, 1}

	got := Shade(albedo, up, up, up)
	want := mgl32.Vec3{1.1 + 0.2, 0.55 + 0.2, 0.2}
	assertVec3(t, want, got, 1e-5)
}

func TestShadeLightBehindSurface(t *testing.T) {
	albedo := mgl32.Vec3{0.8, 0.6, 0.4}

	got := Shade(albedo, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, -1}, mgl32.Vec3{0, 0, 1})
	assertVec3(t, albedo.Mul(Ambient), got, 1e-6)
}

func assertVec3(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}
