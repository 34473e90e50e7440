package pyphen

import "testing"

func TestAlternativeParserCountdown(t *testing.T) {
	ap, err := newAlternativeParser("s1sz", "sz=sz,1,3")
	if err != nil {
		t.Fatal(err)
	}
	v := ap.next(0)
	if v.Rule != nil {
		t.Fatalf("even weight must not carry a rule")
	}
	v = ap.next(1)
	if v.Rule == nil {
		t.Fatalf("odd weight must carry a rule")
	}
	if v.Weight != 1 || v.Rule.Change != "sz=sz" || v.Rule.Index != -1 || v.Rule.Cut != 3 {
		t.Fatalf("unexpected value %v", v)
	}
	v = ap.next(3)
	if v.Rule == nil || v.Rule.Index != -2 {
		t.Fatalf("countdown should continue to -2, got %v", v)
	}
}

func TestAlternativeParserLeadingDot(t *testing.T) {
	ap, err := newAlternativeParser(".ab1c", "b=b,2,1")
	if err != nil {
		t.Fatal(err)
	}
	var last WeightedValue
	for _, w := range []int{0, 0, 0, 1} {
		last = ap.next(w)
	}
	// index 2, +1 for the boundary, minus 4 slots consumed
	if last.Rule == nil || last.Rule.Index != -1 {
		t.Fatalf("expected rule index -1, got %v", last)
	}
}

func TestRuleSplit(t *testing.T) {
	r := &Rule{Change: "ck=k-k", Index: 1, Cut: 2}
	left, right := r.Split()
	if left != "ck" || right != "k-k" {
		t.Fatalf("split of %q = (%q, %q)", r.Change, left, right)
	}
}
