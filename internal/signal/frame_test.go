package signal

import (
	"encoding/json"
	"testing"

	"github.com/gesturelab/gesture-data/internal/model"
)

func reading(ts, data string) model.SensorReading {
	return model.SensorReading{Timestamp: ts, Data: json.RawMessage(data)}
}

func TestBuildFrame(t *testing.T) {
	t.Run("decodes in row order", func(t *testing.T) {
		frame := BuildFrame([]model.SensorReading{
			reading("t1", `{"x":1,"y":2,"z":3}`),
			reading("t2", `{"x":4,"y":5,"z":6}`),
		}, nil)

		if frame.Len() != 2 {
			t.Fatalf("Len = %d, want 2", frame.Len())
		}
		if frame.Samples[0] != (Sample{1, 2, 3, "t1"}) {
			t.Errorf("sample 0 = %+v", frame.Samples[0])
		}
		if frame.Samples[1] != (Sample{4, 5, 6, "t2"}) {
			t.Errorf("sample 1 = %+v", frame.Samples[1])
		}
		if frame.Skipped != 0 {
			t.Errorf("Skipped = %d, want 0", frame.Skipped)
		}
	})

	t.Run("missing channel defaults to zero", func(t *testing.T) {
		frame := BuildFrame([]model.SensorReading{
			reading("t1", `{"x":1,"y":2}`),
		}, nil)

		if frame.Len() != 1 {
			t.Fatalf("Len = %d, want 1", frame.Len())
		}
		if got := frame.Samples[0]; got.X != 1 || got.Y != 2 || got.Z != 0 {
			t.Errorf("sample = %+v, want (1,2,0)", got)
		}
	})

	t.Run("string-encoded payload", func(t *testing.T) {
		frame := BuildFrame([]model.SensorReading{
			reading("t1", `"{\"x\":7,\"y\":8,\"z\":9}"`),
		}, nil)

		if frame.Len() != 1 {
			t.Fatalf("Len = %d, want 1", frame.Len())
		}
		if got := frame.Samples[0]; got.X != 7 || got.Y != 8 || got.Z != 9 {
			t.Errorf("sample = %+v, want (7,8,9)", got)
		}
	})

	t.Run("malformed payload skipped and counted", func(t *testing.T) {
		frame := BuildFrame([]model.SensorReading{
			reading("t1", `{"x":1,"y":2,"z":3}`),
			reading("t2", `{"x":`),
			reading("t3", `{"x":4,"y":5,"z":6}`),
		}, nil)

		if frame.Len() != 2 {
			t.Errorf("Len = %d, want 2", frame.Len())
		}
		if frame.Skipped != 1 {
			t.Errorf("Skipped = %d, want 1", frame.Skipped)
		}
	})

	t.Run("readings without payload ignored silently", func(t *testing.T) {
		frame := BuildFrame([]model.SensorReading{
			reading("t1", `null`),
			{Timestamp: "t2"},
			reading("t3", `{"x":1}`),
		}, nil)

		if frame.Len() != 1 {
			t.Errorf("Len = %d, want 1", frame.Len())
		}
		if frame.Skipped != 0 {
			t.Errorf("Skipped = %d, want 0 (missing payload is not a decode failure)", frame.Skipped)
		}
	})
}

func TestChannels(t *testing.T) {
	frame := Frame{Samples: []Sample{
		{1, 2, 3, "t1"},
		{4, 5, 6, "t2"},
	}}

	xs, ys, zs := frame.Channels()
	if len(xs) != 2 || xs[0] != 1 || xs[1] != 4 {
		t.Errorf("xs = %v", xs)
	}
	if len(ys) != 2 || ys[0] != 2 || ys[1] != 5 {
		t.Errorf("ys = %v", ys)
	}
	if len(zs) != 2 || zs[0] != 3 || zs[1] != 6 {
		t.Errorf("zs = %v", zs)
	}
}
