package firmata

import (
	"testing"
	"time"
)

func TestSonarTableDuplicateTriggerIgnored(t *testing.T) {
	st := newSonarTable()
	if err := st.register(4, 5, nil); err != nil {
		t.Fatal(err)
	}
	if err := st.register(4, 6, nil); err != nil {
		t.Fatal(err)
	}
	if st.entries[4].echoPin != 5 {
		t.Fatalf("duplicate registration must not overwrite the original echo pin, got %d", st.entries[4].echoPin)
	}
}

func TestSonarTableMaxDevices(t *testing.T) {
	st := newSonarTable()
	for i := uint8(0); i < maxSonarDevices; i++ {
		if err := st.register(i, i+10, nil); err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
	}
	if err := st.register(maxSonarDevices, 99, nil); err != ErrTooManySonarDevices {
		t.Fatalf("got %v, want ErrTooManySonarDevices", err)
	}
}

func TestSonarTableUpdateOnlyFiresOnChange(t *testing.T) {
	st := newSonarTable()
	st.register(4, 5, func(triggerPin uint8, distanceCM int, ts time.Time) {})

	st.update(4, 10, time.Now())
	if cb, changed := st.update(4, 10, time.Now()); changed || cb != nil {
		t.Fatal("expected no callback on repeated identical reading")
	}
	if cb, changed := st.update(4, 20, time.Now()); !changed || cb == nil {
		t.Fatal("expected callback to fire on a changed reading")
	}
}
