package model

import "time"

// chromeEpochOffsetSeconds is the gap between the Chromium profile epoch
// (1601-01-01 UTC) and the Unix epoch (1970-01-01 UTC).
const chromeEpochOffsetSeconds = 11644473600

// ToChromeTime converts t to microseconds since 1601-01-01 UTC, the timestamp
// format Chromium-based browsers use in their profile databases.
func ToChromeTime(t time.Time) int64 {
	return t.UnixMicro() + chromeEpochOffsetSeconds*1_000_000
}

// FromChromeTime converts microseconds since 1601-01-01 UTC back to a
// time.Time. Zero maps to the zero time, matching rows that were written
// without a timestamp.
func FromChromeTime(micros int64) time.Time {
	if micros == 0 {
		return time.Time{}
	}
	return time.UnixMicro(micros - chromeEpochOffsetSeconds*1_000_000).UTC()
}
