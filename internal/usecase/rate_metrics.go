package usecase

func (uc *DefaultRateResolver) recordRateLookup(source string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordRateLookup(source)
}

func (uc *DefaultRateResolver) recordRateFetch(provider, outcome string, durationSeconds float64) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordRateFetch(provider, outcome, durationSeconds)
}

func (uc *DefaultRateResolver) recordRefreshedPair(outcome string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordRefreshedPair(outcome)
}

func (uc *DefaultRateResolver) recordMarkedStale(count int64) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordMarkedStale(count)
}
