package renderer

import (
	"testing"

	"github.com/df07/pathtracer/pkg/core"
)

func TestImageBuffer_SetRowThenSnapshot(t *testing.T) {
	buf := NewImageBuffer(3, 2)
	buf.SetRow(0, []core.Vec3{core.NewVec3(1, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(3, 0, 0)})
	buf.SetRow(1, []core.Vec3{core.NewVec3(4, 0, 0), core.NewVec3(5, 0, 0), core.NewVec3(6, 0, 0)})

	snap := buf.Snapshot()
	if len(snap) != 2 || len(snap[0]) != 3 {
		t.Fatalf("unexpected snapshot shape: %dx%d", len(snap), len(snap[0]))
	}
	if snap[0][1].X != 2 || snap[1][2].X != 6 {
		t.Errorf("snapshot contents wrong: %v", snap)
	}
}

func TestImageBuffer_SnapshotIsIndependentCopy(t *testing.T) {
	buf := NewImageBuffer(1, 1)
	buf.SetRow(0, []core.Vec3{core.NewVec3(1, 1, 1)})

	snap := buf.Snapshot()
	snap[0][0] = core.NewVec3(9, 9, 9)

	again := buf.Snapshot()
	if !again[0][0].Equals(core.NewVec3(1, 1, 1)) {
		t.Errorf("mutating a snapshot affected the buffer: %v", again[0][0])
	}
}
