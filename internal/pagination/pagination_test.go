package pagination

import "testing"

func TestPageRequest_Defaults(t *testing.T) {
	var p PageRequest
	p.Defaults()
	if p.Page != 1 || p.PageSize != 20 || p.Sort != "-created_at" {
		t.Errorf("unexpected defaults %+v", p)
	}
	if p.Offset() != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset())
	}

	p = PageRequest{Page: 3, PageSize: 10}
	if p.Offset() != 20 {
		t.Errorf("expected offset 20, got %d", p.Offset())
	}
}

func TestPageRequest_OrderClause(t *testing.T) {
	tests := map[string]string{
		"name":        "name ASC, id ASC",
		"-name":       "name DESC, id DESC",
		"-created_at": "created_at DESC, id DESC",
		"updated_at":  "updated_at ASC, id ASC",
		"bogus":       "created_at DESC, id DESC",
	}
	for sort, want := range tests {
		p := PageRequest{Sort: sort}
		if got := p.OrderClause(); got != want {
			t.Errorf("sort %q: expected %q, got %q", sort, want, got)
		}
	}
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[int](nil, 2, 10, 25)
	if resp.TotalPages != 3 {
		t.Errorf("expected 3 pages, got %d", resp.TotalPages)
	}
	if resp.Data == nil || len(resp.Data) != 0 {
		t.Errorf("expected empty non-nil data, got %v", resp.Data)
	}
}
