package quad

import "github.com/Luna-Flow/calculus-numerical/util"

// workspace is the arena of active subintervals for one integration call.
// It is exclusively owned by that call, pre-sized to the subdivision limit
// so the hot bisection loop never allocates, and discarded on return.
type workspace struct {
	limit int

	// flat backing arrays indexed by subinterval slot
	alist, blist []float64
	rlist, elist []float64
	level        []int

	// order is a permutation of 0..size-1 in approximately descending
	// error order; order[0] always points at the maximum-error entry
	order []int

	size         int
	worst        int // cached order[0]
	maximumLevel int
}

func newWorkspace(limit int) *workspace {
	return &workspace{
		limit: limit,
		alist: make([]float64, limit),
		blist: make([]float64, limit),
		rlist: make([]float64, limit),
		elist: make([]float64, limit),
		level: make([]int, limit),
		order: make([]int, limit),
	}
}

// initialize resets the workspace to a single entry covering [a,b].
func (w *workspace) initialize(a, b, result, errEst float64) {
	w.size = 1
	w.worst = 0
	w.maximumLevel = 0
	w.alist[0], w.blist[0] = a, b
	w.rlist[0], w.elist[0] = result, errEst
	w.order[0] = 0
	w.level[0] = 0
}

// retrieveWorst reads the subinterval with the largest error estimate.
func (w *workspace) retrieveWorst() (a, b, result, errEst float64) {
	i := w.worst
	return w.alist[i], w.blist[i], w.rlist[i], w.elist[i]
}

// -- records the two children of bisecting the current worst subinterval
//
// The child with the larger error estimate overwrites the parent's slot,
// the other child is appended as a new slot; both sit one level deeper.
func (w *workspace) update(a1, b1, area1, error1, a2, b2, area2, error2 float64) {
	iMax := w.worst
	iNew := w.size
	newLevel := w.level[iMax] + 1

	if error2 > error1 {
		w.alist[iMax] = a2 // blist[iMax] is already b2
		w.rlist[iMax] = area2
		w.elist[iMax] = error2

		w.alist[iNew], w.blist[iNew] = a1, b1
		w.rlist[iNew], w.elist[iNew] = area1, error1
	} else {
		w.blist[iMax] = b1 // alist[iMax] is already a1
		w.rlist[iMax] = area1
		w.elist[iMax] = error1

		w.alist[iNew], w.blist[iNew] = a2, b2
		w.rlist[iNew], w.elist[iNew] = area2, error2
	}
	w.level[iMax] = newLevel
	w.level[iNew] = newLevel

	w.size++
	if newLevel > w.maximumLevel {
		w.maximumLevel = newLevel
	}

	w.sort()
}

// -- restores the error-descending ordering after an update
//
// This is a bounded linear insertion over a window from the front, not a
// full sort. The window shrinks once more than half the budget is spent;
// entries past it are only approximately ordered. The comparison
// directions (strict < on the way down, >= on the way up) decide which
// subinterval is refined next in near-tie cases and must not be altered.
func (w *workspace) sort() {
	last := w.size - 1
	iMaxErr := w.order[0]

	// with fewer than three entries the identity ordering is already
	// correct: update left the larger child in the parent slot
	if last < 2 {
		w.order[0] = 0
		w.order[1] = 1
		w.worst = iMaxErr
		return
	}

	errMax := w.elist[iMaxErr]

	var top int
	if last < w.limit/2+2 {
		top = last
	} else {
		top = w.limit - last + 1
	}

	// reinsert the updated slot, scanning top-down
	i := 1
	for i < top && errMax < w.elist[w.order[i]] {
		w.order[i-1] = w.order[i]
		i++
	}
	w.order[i-1] = iMaxErr

	// reinsert the appended slot, scanning bottom-up
	errMin := w.elist[last]
	k := top - 1
	for k > i-2 && errMin >= w.elist[w.order[k]] {
		w.order[k+1] = w.order[k]
		k--
	}
	w.order[k+1] = last

	w.worst = w.order[0]
}

// sumResults recomputes the integral as the sum over all stored
// subinterval results, guarding against drift in the running accumulator.
func (w *workspace) sumResults() float64 {
	return util.Sum(w.rlist[:w.size])
}
