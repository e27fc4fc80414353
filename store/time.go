package store

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// TimeSpan bounds the moment a change event was recorded.
type TimeSpan = timespan.TimeSpan

const epsilon = time.Millisecond

func occurredNow() TimeSpan {
	now := time.Now()
	return timespan.BetweenTimes(now.Add(-1*epsilon), now.Add(epsilon))
}
