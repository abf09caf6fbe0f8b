package queue

import (
	"fmt"
	"sort"
	"strconv"
	"sync"
	"testing"
	"time"
)

func TestFIFOOrder(t *testing.T) {
	q := New()
	for i := 0; i < 100; i++ {
		q.Put(strconv.Itoa(i))
	}
	if q.Len() != 100 {
		t.Fatalf("Len=100 expected, got %d", q.Len())
	}
	for i := 0; i < 100; i++ {
		item, ok := q.Get()
		if !ok || item != strconv.Itoa(i) {
			t.Fatalf("item %d: ok=%v item=%q", i, ok, item)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("Len=0 expected, got %d", q.Len())
	}
}

func TestGetBlocksUntilPut(t *testing.T) {
	q := New()
	done := make(chan string, 1)
	go func() {
		item, _ := q.Get()
		done <- item
	}()
	select {
	case item := <-done:
		t.Fatalf("Get returned %q before Put", item)
	case <-time.After(20 * time.Millisecond):
	}
	q.Put("x")
	select {
	case item := <-done:
		if item != "x" {
			t.Fatalf("want x, got %q", item)
		}
	case <-time.After(time.Second):
		t.Fatalf("Get did not wake after Put")
	}
}

func TestManyProducersOneConsumer(t *testing.T) {
	q := New()
	const producers, perProducer = 8, 250
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Put(fmt.Sprintf("%d/%d", p, i))
			}
		}(p)
	}
	wg.Wait()

	got := make([]string, 0, producers*perProducer)
	for i := 0; i < producers*perProducer; i++ {
		item, ok := q.Get()
		if !ok {
			t.Fatalf("queue drained early at %d", i)
		}
		got = append(got, item)
	}
	sort.Strings(got)
	for i := 1; i < len(got); i++ {
		if got[i] == got[i-1] {
			t.Fatalf("duplicate item %q", got[i])
		}
	}
}

func TestCloseDrains(t *testing.T) {
	q := New()
	q.Put("a")
	q.Close()
	if item, ok := q.Get(); !ok || item != "a" {
		t.Fatalf("queued item must remain readable after Close: ok=%v item=%q", ok, item)
	}
	if _, ok := q.Get(); ok {
		t.Fatalf("Get on closed drained queue must report ok=false")
	}
}

func TestCloseWakesBlockedReader(t *testing.T) {
	q := New()
	done := make(chan bool, 1)
	go func() {
		_, ok := q.Get()
		done <- ok
	}()
	time.Sleep(10 * time.Millisecond)
	q.Close()
	select {
	case ok := <-done:
		if ok {
			t.Fatalf("want ok=false from closed empty queue")
		}
	case <-time.After(time.Second):
		t.Fatalf("Close did not wake blocked reader")
	}
}

func TestTryGet(t *testing.T) {
	q := New()
	if _, ok := q.TryGet(); ok {
		t.Fatalf("TryGet on empty queue must report ok=false")
	}
	q.Put("a")
	if item, ok := q.TryGet(); !ok || item != "a" {
		t.Fatalf("TryGet: ok=%v item=%q", ok, item)
	}
}

func BenchmarkPutGet_Parallel(b *testing.B) {
	q := New()
	stop := make(chan struct{})
	go func() {
		for {
			if _, ok := q.Get(); !ok {
				return
			}
			select {
			case <-stop:
				return
			default:
			}
		}
	}()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			q.Put("queue:cq(0):ctask(0)-qtask(1)")
		}
	})
	close(stop)
	q.Close()
}
