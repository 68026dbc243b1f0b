package pagination

import "testing"

func TestNormalizeDefaults(t *testing.T) {
	n := Params{}.Normalize()
	if n.Page != 1 {
		t.Fatalf("expected page 1, got %d", n.Page)
	}
	if n.Limit != DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultLimit, n.Limit)
	}
}

func TestNormalizeCapsLimit(t *testing.T) {
	n := Params{Page: 3, Limit: 5000}.Normalize()
	if n.Limit != MaxLimit {
		t.Fatalf("expected limit capped at %d, got %d", MaxLimit, n.Limit)
	}
	if n.Page != 3 {
		t.Fatalf("page must be preserved, got %d", n.Page)
	}
}

func TestOffset(t *testing.T) {
	if got := (Params{Page: 1, Limit: 20}).Offset(); got != 0 {
		t.Fatalf("expected offset 0, got %d", got)
	}
	if got := (Params{Page: 4, Limit: 25}).Offset(); got != 75 {
		t.Fatalf("expected offset 75, got %d", got)
	}
}

func TestNewMeta(t *testing.T) {
	meta := NewMeta(41, Params{Page: 2, Limit: 20})
	if meta.Total != 41 {
		t.Fatalf("expected total 41, got %d", meta.Total)
	}
	if meta.TotalPages != 3 {
		t.Fatalf("expected 3 pages for 41/20, got %d", meta.TotalPages)
	}
	if meta.Page != 2 || meta.Limit != 20 {
		t.Fatalf("unexpected meta %+v", meta)
	}

	empty := NewMeta(0, Params{})
	if empty.TotalPages != 0 {
		t.Fatalf("expected 0 pages for empty set, got %d", empty.TotalPages)
	}
}
