package port

import "time"

// Clock supplies the current instant. Implementations return UTC.
type Clock interface {
	Now() time.Time
}
