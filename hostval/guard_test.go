package hostval

import (
	"sync"
	"testing"
)

func TestRegion_Reentrant(t *testing.T) {
	var r Region
	ran := false
	r.Do(func() {
		r.Do(func() {
			ran = true
		})
	})
	if !ran {
		t.Fatal("nested Do did not run")
	}
}

func TestRegion_Serializes(t *testing.T) {
	var r Region
	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Do(func() {
				counter++
			})
		}()
	}
	wg.Wait()
	if counter != 50 {
		t.Fatalf("counter = %d, want 50", counter)
	}
}

func TestCritical_NestedViaSetAttr(t *testing.T) {
	// SetAttr acquires the process-wide region; wrapping it in Critical
	// must not deadlock.
	done := make(chan struct{})
	go func() {
		defer close(done)
		Critical(func() {
			v := NewIntegers([]Rint{1})
			v.SetAttr(AttrClass, NewStringsFrom("x"))
		})
	}()
	<-done
}
