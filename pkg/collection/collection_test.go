package collection_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/shashiranjanraj/vendora/pkg/collection"
)

func TestMap(t *testing.T) {
	got := collection.Map([]int{1, 2, 3}, func(n int) int { return n * n })
	if want := []int{1, 4, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFilterAndReject(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	if got := collection.Filter([]int{1, 2, 3, 4}, even); !reflect.DeepEqual(got, []int{2, 4}) {
		t.Errorf("Filter: got %v", got)
	}
	if got := collection.Reject([]int{1, 2, 3, 4}, even); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("Reject: got %v", got)
	}
}

func TestFirst(t *testing.T) {
	words := []string{"alpha", "beta", "gamma"}

	got, ok := collection.First(words, func(s string) bool { return strings.HasPrefix(s, "b") })
	if !ok || got != "beta" {
		t.Errorf("expected beta, got %q (found=%v)", got, ok)
	}

	_, ok = collection.First(words, func(s string) bool { return s == "delta" })
	if ok {
		t.Error("expected no match")
	}
}

func TestGroupBy(t *testing.T) {
	got := collection.GroupBy([]string{"ant", "bee", "ape"}, func(s string) string { return s[:1] })
	if len(got["a"]) != 2 || len(got["b"]) != 1 {
		t.Errorf("unexpected grouping: %v", got)
	}
}

func TestKeyBy(t *testing.T) {
	type item struct{ ID int }
	got := collection.KeyBy([]item{{1}, {2}}, func(i item) int { return i.ID })
	if got[2] != (item{2}) {
		t.Errorf("unexpected keying: %v", got)
	}
}

func TestReduceAndSum(t *testing.T) {
	product := collection.Reduce([]int{2, 3, 4}, 1, func(acc, n int) int { return acc * n })
	if product != 24 {
		t.Errorf("Reduce: expected 24, got %d", product)
	}

	total := collection.Sum([]float64{1.5, 2.5}, func(f float64) float64 { return f })
	if total != 4.0 {
		t.Errorf("Sum: expected 4.0, got %v", total)
	}
}

func TestContains(t *testing.T) {
	if !collection.Contains([]int{1, 2}, func(n int) bool { return n == 2 }) {
		t.Error("expected Contains to find 2")
	}
}

func TestPaginate(t *testing.T) {
	s := []int{1, 2, 3, 4, 5}

	if got := collection.Paginate(s, 2, 2); !reflect.DeepEqual(got, []int{3, 4}) {
		t.Errorf("page 2: got %v", got)
	}
	if got := collection.Paginate(s, 3, 2); !reflect.DeepEqual(got, []int{5}) {
		t.Errorf("page 3: got %v", got)
	}
	if got := collection.Paginate(s, 4, 2); got != nil {
		t.Errorf("past the end: expected nil, got %v", got)
	}
	if got := collection.Paginate(s, 0, 2); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("page 0 clamps to 1: got %v", got)
	}
}
