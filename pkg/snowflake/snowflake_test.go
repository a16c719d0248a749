package snowflake

import (
	"sync"
	"testing"

	"github.com/bwmarrin/snowflake"
)

func TestGenRequestID(t *testing.T) {
	id := GenRequestID()
	if id == "" {
		t.Fatal("expected non-empty request id")
	}
	if _, err := snowflake.ParseBase58([]byte(id)); err != nil {
		t.Fatalf("request id is not base58: %v", err)
	}
}

// 并发生成不重复
func TestGenRequestID_Concurrent(t *testing.T) {
	const (
		goroutines = 20
		perRoutine = 2000
	)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]struct{}, goroutines*perRoutine)
		dup string
	)

	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < perRoutine; i++ {
				id := GenRequestID()

				mu.Lock()
				if _, exists := ids[id]; exists {
					dup = id
				}
				ids[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if dup != "" {
		t.Fatalf("duplicate request id: %s", dup)
	}
}

func TestGenRequestID_Order(t *testing.T) {
	decode := func(s string) int64 {
		id, err := snowflake.ParseBase58([]byte(s))
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return id.Int64()
	}

	prev := decode(GenRequestID())
	for i := 0; i < 1000; i++ {
		curr := decode(GenRequestID())
		if curr <= prev {
			t.Fatalf("ids not increasing: prev=%d curr=%d", prev, curr)
		}
		prev = curr
	}
}
