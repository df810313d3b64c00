package jobs

import (
	"time"

	"go.uber.org/zap"

	reportRepo "github.com/DuJao22/Comercio-pro/model/repository/report"
)

// PaymentSweepJob logs how many outbound sales are pending past their due
// date, so operators see overdue payments without opening the dashboard.
func PaymentSweepJob(args ...string) {
	handle := boundDB()
	if handle == nil {
		return
	}
	reports, err := reportRepo.NewReportRepository(handle)
	if err != nil {
		zap.L().Error("payment sweep: repository init failed", zap.Error(err))
		return
	}
	today := time.Now().Format("2006-01-02")
	n, err := reports.CountOverdue(today)
	if err != nil {
		zap.L().Error("payment sweep failed", zap.Error(err))
		return
	}
	if n > 0 {
		zap.L().Warn("overdue payments pending", zap.Int64("count", n))
	} else {
		zap.L().Info("no overdue payments")
	}
}
