package visitorpackage

import "time"

func SetClock(handler *Handler, now func() time.Time) {
	handler.now = now
}
