package seq

import (
	"errors"
	"iter"
	"slices"
	"testing"

	"github.com/PrestonFrom/early-returns/pkg/early"
)

func TestOf(t *testing.T) {
	t.Parallel()

	got := slices.Collect(Of(1, 2, 3))
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
}

func TestWhileSome_StopsAtFirstNone(t *testing.T) {
	t.Parallel()

	src := Of(early.Some(1), early.Some(2), early.None[int](), early.Some(10))
	got := slices.Collect(WhileSome(src))
	if !slices.Equal(got, []int{1, 2}) {
		t.Fatalf("expected [1 2], got %v", got)
	}
}

func TestSkipNone_DropsNone(t *testing.T) {
	t.Parallel()

	src := Of(early.Some(1), early.None[int](), early.Some(10))
	got := slices.Collect(SkipNone(src))
	if !slices.Equal(got, []int{1, 10}) {
		t.Fatalf("expected [1 10], got %v", got)
	}
}

func TestWhileOk_StopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	src := Of(early.Success(1), early.Fail[int](errors.New("boom")), early.Success(10))
	got := slices.Collect(WhileOk(src))
	if !slices.Equal(got, []int{1}) {
		t.Fatalf("expected [1], got %v", got)
	}
}

func TestSkipFail_DropsFailures(t *testing.T) {
	t.Parallel()

	src := Of(early.Success(1), early.Fail[int](errors.New("boom")), early.Success(10))
	got := slices.Collect(SkipFail(src))
	if !slices.Equal(got, []int{1, 10}) {
		t.Fatalf("expected [1 10], got %v", got)
	}
}

// counted wraps a sequence and records how many elements were pulled.
func counted[T any](src iter.Seq[T], pulls *int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range src {
			*pulls++
			if !yield(v) {
				return
			}
		}
	}
}

func TestWhileSome_DoesNotPullPastNone(t *testing.T) {
	t.Parallel()

	pulls := 0
	src := counted(Of(early.Some(1), early.None[int](), early.Some(10)), &pulls)
	_ = slices.Collect(WhileSome(src))
	if pulls != 2 {
		t.Fatalf("expected 2 pulls, got %d", pulls)
	}
}

func TestWhileSome_EarlyRangeBreak(t *testing.T) {
	t.Parallel()

	pulls := 0
	src := counted(Of(early.Some(1), early.Some(2), early.Some(3)), &pulls)
	for v := range WhileSome(src) {
		if v == 2 {
			break
		}
	}
	if pulls != 2 {
		t.Fatalf("expected caller break to stop the source at 2 pulls, got %d", pulls)
	}
}

func TestSkipNone_EmptyAndAllNone(t *testing.T) {
	t.Parallel()

	if got := slices.Collect(SkipNone(Of[early.Option[int]]())); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
	src := Of(early.None[int](), early.None[int]())
	if got := slices.Collect(SkipNone(src)); len(got) != 0 {
		t.Fatalf("expected empty, got %v", got)
	}
}
