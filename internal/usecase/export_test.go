package usecase

import "time"

// SetNow overrides the report clock in tests.
func (uc *ReportUseCase) SetNow(now func() time.Time) {
	uc.now = now
}
