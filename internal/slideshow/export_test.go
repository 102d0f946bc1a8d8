package slideshow

import "time"

// SetClock fixes the time source used for client sidecar ids.
func SetClock(c *Composer, now func() time.Time) {
	c.now = now
}
