package tracker

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

//Tracker : reports progress of a long scan at coarse percentage steps.
//A nil Tracker is valid and silent, so library callers can opt out.
type Tracker struct {
	Label   string
	Total   uint64
	Current uint64
	lastPct uint64
}

func New(label string, total int) *Tracker {
	t := &Tracker{Label: label}
	if total > 0 {
		t.Total = uint64(total)
	}
	return t
}

func (t *Tracker) Increment() {
	if t == nil {
		return
	}
	cur := atomic.AddUint64(&t.Current, 1)
	if t.Total == 0 {
		return
	}
	pct := cur * 100 / t.Total
	if pct >= t.lastPct+10 {
		t.lastPct = pct
		logrus.Debugf("%s: %d%% (%d/%d)", t.Label, pct, cur, t.Total)
	}
}

func (t *Tracker) Done() {
	if t == nil {
		return
	}
	logrus.Infof("%s: %d records", t.Label, atomic.LoadUint64(&t.Current))
}
