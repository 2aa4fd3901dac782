package usecase

func (transferUc *DefaultTransferUsecase) recordTransferCreated(sourceCurrency, destCurrency string, amount float64) {
	if transferUc.Metrics == nil {
		return
	}
	transferUc.Metrics.RecordTransferCreated(sourceCurrency, destCurrency, amount)
}

func (transferUc *DefaultTransferUsecase) recordTransferDeleted() {
	if transferUc.Metrics == nil {
		return
	}
	transferUc.Metrics.RecordTransferDeleted()
}

func (transferUc *DefaultTransferUsecase) recordTransferError(errorType string) {
	if transferUc.Metrics == nil {
		return
	}
	transferUc.Metrics.RecordTransferError(errorType)
}

func (transferUc *DefaultTransferUsecase) recordTransferCreateDuration(status string, durationSeconds float64) {
	if transferUc.Metrics == nil {
		return
	}
	transferUc.Metrics.RecordTransferCreateDuration(status, durationSeconds)
}

func (transferUc *DefaultTransferUsecase) recordIntegrityViolations(count int) {
	if transferUc.Metrics == nil {
		return
	}
	transferUc.Metrics.RecordIntegrityViolations(count)
}
