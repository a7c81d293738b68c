package controller

import (
	"time"

	"github.com/kashee337/solve_digest/logger"
	"github.com/kashee337/solve_digest/model"
)

// Window is the calendar day of "now" in the target timezone offset.
type Window struct {
	zone  *time.Location
	year  int
	month time.Month
	day   int
}

func NewWindow(now time.Time, offset time.Duration) Window {
	zone := time.FixedZone("target", int(offset/time.Second))
	y, m, d := now.In(zone).Date()
	return Window{zone: zone, year: y, month: m, day: d}
}

// Contains reports whether the unix second lands on the window's day
// once shifted by the same offset.
func (w Window) Contains(epoch_second int64) bool {
	y, m, d := time.Unix(epoch_second, 0).In(w.zone).Date()
	return y == w.year && m == w.month && d == w.day
}

// In shows t in the target offset.
func (w Window) In(t time.Time) time.Time {
	return t.In(w.zone)
}

func (w Window) Day() string {
	return time.Date(w.year, w.month, w.day, 0, 0, 0, 0, w.zone).Format("2006-01-02")
}

func FilterToday[T any](list []T, stamp func(T) int64, w Window) []T {
	today := make([]T, 0, len(list))
	for _, v := range list {
		if w.Contains(stamp(v)) {
			today = append(today, v)
		}
	}
	return today
}

var sleep = time.Sleep

type Expansion struct {
	Window Window
	Start  int
	Step   int
	// Pause is waited before every refetch.
	Pause time.Duration
	Log   logger.Sink
}

// ExpandToday fetches with e.Start and keeps refetching with a limit grown by
// e.Step while every fetched record is from today. It stops once a record from
// another day shows up, or the source hands back nothing or fewer records than
// asked for. Each refetch replaces the previous result. There is no upper
// bound on the limit: an account whose whole history sits on today grows
// until the source runs dry.
func ExpandToday[T any](e Expansion, name string, fetch func(limit int) []T, stamp func(T) int64) []T {
	limit := e.Start
	fetched := fetch(limit)
	today := FilterToday(fetched, stamp, e.Window)
	for len(fetched) != 0 && len(today) == len(fetched) && len(fetched) >= limit {
		limit += e.Step
		e.Log.Info("%s: all %d fetched submissions are from %s, widening limit to %d", name, len(fetched), e.Window.Day(), limit)
		if e.Pause > 0 {
			sleep(e.Pause)
		}
		fetched = fetch(limit)
		today = FilterToday(fetched, stamp, e.Window)
	}
	return today
}

type LeetcodeFetcher interface {
	Fetch(limit int) []model.LeetcodeSubmission
}

type CodeforcesFetcher interface {
	Fetch(limit int) []model.CodeforcesSubmission
}

// CollectToday runs the expansion for leetcode, then for codeforces.
func CollectToday(e Expansion, lc LeetcodeFetcher, cf CodeforcesFetcher) model.Digest {
	d := model.Digest{
		Leetcode: ExpandToday(e, "leetcode", lc.Fetch, func(s model.LeetcodeSubmission) int64 {
			return int64(s.Timestamp)
		}),
		Codeforces: ExpandToday(e, "codeforces", cf.Fetch, func(s model.CodeforcesSubmission) int64 {
			return s.CreationTimeSeconds
		}),
	}
	e.Log.Info("%d leetcode and %d codeforces submissions on %s", len(d.Leetcode), len(d.Codeforces), e.Window.Day())
	return d
}
