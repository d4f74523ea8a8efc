package assert

import "testing"

func TestThatPanicsWithFailure(t *testing.T) {
	defer func() {
		r := recover()
		f, ok := r.(Failure)
		if !ok {
			t.Fatalf("expected Failure, got %v", r)
		}
		if f.Error() != "assertion failed: got 7" {
			t.Fatalf("unexpected message %q", f.Error())
		}
	}()
	That(false, "got %d", 7)
}

func TestThatHoldsQuietly(t *testing.T) {
	That(true, "unreachable")
}

func TestSetLevelDisablesChecks(t *testing.T) {
	prev := SetLevel(LevelOff)
	defer SetLevel(prev)

	// must not panic while checks are off
	That(false, "suppressed")

	if got := SetLevel(LevelNormal); got != LevelOff {
		t.Fatalf("SetLevel returned %v, want LevelOff", got)
	}
}
