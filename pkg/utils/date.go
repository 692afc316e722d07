package utils

import "time"

// TimeNow is the clock used for response timestamps.
func TimeNow() time.Time {
	return time.Now().UTC()
}
