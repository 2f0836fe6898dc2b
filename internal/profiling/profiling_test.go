package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAndReset(t *testing.T) {
	ResetFrame()
	stop := Track("camera.Orbit")
	time.Sleep(time.Millisecond)
	stop()
	Track("camera.Orbit")()
	Track("physics.CastRay")()

	if got := Count("camera.Orbit"); got != 2 {
		t.Fatalf("Count(camera.Orbit) = %d, want 2", got)
	}
	if SumWithPrefix("camera.") < time.Millisecond {
		t.Errorf("camera. prefix sum should include the sleep")
	}
	if !strings.HasPrefix(TopN(1), "camera.Orbit:") {
		t.Errorf("TopN(1) = %q, want camera.Orbit first", TopN(1))
	}

	ResetFrame()
	if len(Snapshot()) != 0 || Count("camera.Orbit") != 0 {
		t.Errorf("ResetFrame left entries behind")
	}
}

func TestFormatMs(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ms"},
		{2 * time.Millisecond, "2ms"},
		{4200 * time.Microsecond, "4.2ms"},
	}
	for _, tt := range tests {
		if got := formatMs(tt.d); got != tt.want {
			t.Errorf("formatMs(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
