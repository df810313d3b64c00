package config

import (
	"github.com/DuJao22/Comercio-pro/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"keepalive":    {Schedule: "@every 5m", Job: jobs.KeepAliveJob},
	"paymentsweep": {Schedule: "0 3 * * *", Job: jobs.PaymentSweepJob},
	// Add more jobs here
}
