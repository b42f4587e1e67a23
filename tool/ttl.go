package tool

import "time"

// DefaultTTL bounds how long demo state (finished upload runs) stays cached.
const DefaultTTL = 300 * time.Second
