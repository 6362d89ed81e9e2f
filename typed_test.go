package mempool

import (
	"testing"
	"unsafe"
)

type testRecord struct {
	a int64
	b int32
	c int16
	d int8
}

func TestAllocStruct(t *testing.T) {
	p := NewPool()

	ptr := AllocStruct[int](p)
	if ptr == nil {
		t.Fatal("AllocStruct[int] returned nil")
	}
	if *ptr != 0 {
		t.Errorf("AllocStruct[int] value = %d, want 0 (zeroed)", *ptr)
	}

	r := AllocStruct[testRecord](p)
	if r == nil {
		t.Fatal("AllocStruct[testRecord] returned nil")
	}
	if r.a != 0 || r.b != 0 || r.c != 0 || r.d != 0 {
		t.Errorf("AllocStruct[testRecord] not zeroed: %+v", *r)
	}

	// Verify we can write through the pointers
	*ptr = 42
	r.a = 100
	if *ptr != 42 || r.a != 100 {
		t.Error("Could not write to allocated memory")
	}
}

func TestAllocStructZeroSize(t *testing.T) {
	p := NewPool()
	ptr := AllocStruct[struct{}](p)
	if ptr == nil {
		t.Fatal("AllocStruct[struct{}] returned nil")
	}
	// A zero-size type consumes nothing from the pool.
	if p.UsedBytes() != 0 {
		t.Errorf("UsedBytes = %d, want 0", p.UsedBytes())
	}
}

func TestAllocStructConsumesRoundedSize(t *testing.T) {
	p := NewPool()
	AllocStruct[testRecord](p) // 15 bytes of fields, padded struct
	var zero testRecord
	want := roundUp8(int(unsafe.Sizeof(zero)))
	if p.UsedBytes() != want {
		t.Errorf("UsedBytes = %d, want %d", p.UsedBytes(), want)
	}
}

func TestPieceAtRoundTrip(t *testing.T) {
	p := NewPool()
	p.SetMinBlockSize(128)

	var want []*testRecord
	for i := 0; i < 20; i++ {
		r := AllocStruct[testRecord](p)
		r.a = int64(i)
		want = append(want, r)
	}

	for i := range want {
		got := PieceAt[testRecord](p, i)
		if got != want[i] {
			t.Errorf("PieceAt(%d) = %p, want %p", i, got, want[i])
		}
		if got.a != int64(i) {
			t.Errorf("PieceAt(%d).a = %d, want %d", i, got.a, i)
		}
	}

	if got := PieceAt[testRecord](p, len(want)); got != nil {
		t.Errorf("PieceAt past the end = %p, want nil", got)
	}
}

func TestView(t *testing.T) {
	p := NewPool()
	p.SetMinBlockSize(64) // tiny blocks, several per view

	v := NewView[int64](p)
	if v.Len() != 0 {
		t.Errorf("empty view Len = %d, want 0", v.Len())
	}

	var want []*int64
	for i := 0; i < 30; i++ {
		e := v.Alloc()
		*e = int64(i * i)
		want = append(want, e)
	}

	if v.Len() != 30 {
		t.Errorf("Len = %d, want 30", v.Len())
	}

	for i := range want {
		got := v.At(i)
		if got != want[i] {
			t.Errorf("At(%d) = %p, want %p", i, got, want[i])
		}
		if *got != int64(i*i) {
			t.Errorf("*At(%d) = %d, want %d", i, *got, i*i)
		}
	}

	if got := v.At(30); got != nil {
		t.Errorf("At(30) = %p, want nil", got)
	}
	if got := v.At(-1); got != nil {
		t.Error("At(-1) should be nil")
	}
}

func TestViewSurvivesFreeAll(t *testing.T) {
	p := NewPool()
	v := NewView[int32](p)
	v.Alloc()
	p.FreeAll()

	if v.Len() != 0 {
		t.Errorf("Len after FreeAll = %d, want 0", v.Len())
	}
	if got := v.At(0); got != nil {
		t.Error("At(0) after FreeAll should be nil")
	}

	// The view remains usable against the reset pool.
	e := v.Alloc()
	*e = 7
	if v.Len() != 1 || *v.At(0) != 7 {
		t.Error("view unusable after FreeAll")
	}
}

func TestNewViewZeroSizePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic from NewView of a zero-size type")
		}
	}()
	NewView[struct{}](NewPool())
}
