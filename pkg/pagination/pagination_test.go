package pagination_test

import (
	"testing"

	"github.com/openmarket-kr/openmarket-backend/pkg/pagination"
)

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{name: "zero defaults to first page", in: 0, want: 1},
		{name: "negative defaults to first page", in: -3, want: 1},
		{name: "positive passes through", in: 4, want: 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pagination.NormalizePage(tc.in); got != tc.want {
				t.Fatalf("NormalizePage(%d) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	if got := pagination.Offset(1); got != 0 {
		t.Fatalf("Offset(1) = %d, want 0", got)
	}
	if got := pagination.Offset(2); got != pagination.PageSize {
		t.Fatalf("Offset(2) = %d, want %d", got, pagination.PageSize)
	}
	if got := pagination.Offset(0); got != 0 {
		t.Fatalf("Offset(0) = %d, want 0", got)
	}
}
