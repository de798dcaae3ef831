package analytics

import "time"

// SetClock fija el reloj del caso de uso en los tests externos.
func SetClock(uc *DashboardUseCase, now func() time.Time) { uc.now = now }
