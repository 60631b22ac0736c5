package simd

import "testing"

func TestArithmetic(t *testing.T) {
	a := Vec4{1, 2, 3, 4}
	b := Vec4{10, 20, 30, 40}

	if got := a.Add(b); got != (Vec4{11, 22, 33, 44}) {
		t.Fatalf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec4{9, 18, 27, 36}) {
		t.Fatalf("Sub = %v", got)
	}
	if got := a.Mul(b); got != (Vec4{10, 40, 90, 160}) {
		t.Fatalf("Mul = %v", got)
	}
}

func TestHorizontalReductions(t *testing.T) {
	v := Vec4{3, 1, 4, 1}
	if got := v.HAdd(); got != 9 {
		t.Fatalf("HAdd = %v, want 9", got)
	}
	if got := v.HMax(); got != 4 {
		t.Fatalf("HMax = %v, want 4", got)
	}
	if got := v.HMin(); got != 1 {
		t.Fatalf("HMin = %v, want 1", got)
	}
}

func TestSelect(t *testing.T) {
	mask := Vec4{1, 0, 1, 0}
	tval := Vec4{100, 200, 300, 400}
	fval := Vec4{-1, -2, -3, -4}
	got := tval.Select(mask, tval, fval)
	want := Vec4{100, -2, 300, -4}
	if got != want {
		t.Fatalf("Select = %v, want %v", got, want)
	}
}

func TestShuffle(t *testing.T) {
	v := Vec4{10, 20, 30, 40}
	got := v.Shuffle([4]int{3, 2, 1, 0})
	want := Vec4{40, 30, 20, 10}
	if got != want {
		t.Fatalf("Shuffle reverse = %v, want %v", got, want)
	}
}

func TestLoadStore(t *testing.T) {
	buf := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	v := Load(buf, 2)
	want := Vec4{3, 4, 5, 6}
	if v != want {
		t.Fatalf("Load = %v, want %v", v, want)
	}
	v.Scale(2).Store(buf, 0)
	if buf[0] != 6 || buf[3] != 12 {
		t.Fatalf("Store did not apply scaled values: %v", buf)
	}
}

func TestIVec4Bitops(t *testing.T) {
	a := IVec4{0b1100, 0b1010, 0, 1}
	b := IVec4{0b1010, 0b0110, 0, 1}
	if got := a.And(b); got != (IVec4{0b1000, 0b0010, 0, 1}) {
		t.Fatalf("And = %v", got)
	}
	if got := a.Or(b); got != (IVec4{0b1110, 0b1110, 0, 1}) {
		t.Fatalf("Or = %v", got)
	}
	if got := a.Xor(b); got != (IVec4{0b0110, 0b1100, 0, 0}) {
		t.Fatalf("Xor = %v", got)
	}
}
