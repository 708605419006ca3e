package sqlstore

import "time"

// Timestamps are stored as Unix milliseconds so both dialects compare them numerically.

func timeNowMillis() int64 {
	return time.Now().UnixMilli()
}

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
