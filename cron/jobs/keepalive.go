package jobs

import "go.uber.org/zap"

// KeepAliveJob pings the database so hosted SQLite/MySQL connections don't
// idle out. Scheduled every 5 minutes.
func KeepAliveJob(args ...string) {
	handle := boundDB()
	if handle == nil {
		return
	}
	if err := handle.Exec("SELECT 1").Error; err != nil {
		zap.L().Error("database keep-alive ping failed", zap.Error(err))
		return
	}
	zap.L().Debug("database keep-alive ping successful")
}
