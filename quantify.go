package prettyre

import (
	"fmt"
	"strconv"

	"fortio.org/safecast"
)

// count renders a repetition count. A negative count is a contract
// breach by the caller, not an expected runtime error.
func count(n int) string {
	u, err := safecast.Conv[uint](n)
	if err != nil {
		panic(fmt.Sprintf("prettyre: repetition count %d is negative", n))
	}
	return strconv.FormatUint(uint64(u), 10)
}

// Repeats matches the fragment exactly times times. Repeats(0) yields
// a quantifier matching only the empty string.
func (f Fragment[K]) Repeats(times int) Fragment[Quantifier] {
	return frag[Quantifier]("(?:" + f.pat + "){" + count(times) + "}")
}

// RepeatsAtLeast matches the fragment times or more times.
func (f Fragment[K]) RepeatsAtLeast(times int) Fragment[Quantifier] {
	return frag[Quantifier]("(?:" + f.pat + "){" + count(times) + ",}")
}

// OneOrMore matches the fragment one or more times.
func (f Fragment[K]) OneOrMore() Fragment[Quantifier] {
	return frag[Quantifier]("(?:" + f.pat + ")+")
}

// ZeroOrMore matches the fragment zero or more times.
func (f Fragment[K]) ZeroOrMore() Fragment[Quantifier] {
	return frag[Quantifier]("(?:" + f.pat + ")*")
}

// Optional matches the fragment zero or one time.
func (f Fragment[K]) Optional() Fragment[Quantifier] {
	return frag[Quantifier]("(?:" + f.pat + ")?")
}

// RepeatsWithin matches the fragment n times for n in [start, end).
// The rendered counted range {start,end} is inclusive on both ends in
// engine syntax, so the API's upper bound is exclusive while the
// emitted syntax is not. Callers counting repetitions should reason in
// the half-open form.
func (f Fragment[K]) RepeatsWithin(start, end int) Fragment[Quantifier] {
	return frag[Quantifier]("(?:" + f.pat + "){" + count(start) + "," + count(end) + "}")
}

// Lazy makes the preceding quantifier non-greedy. Only quantified
// fragments have a greediness to flip, so only they are accepted.
func Lazy(q Fragment[Quantifier]) Fragment[Chain] {
	return frag[Chain](q.pat + "?")
}
