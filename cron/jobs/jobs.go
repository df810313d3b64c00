package jobs

import (
	"sync"

	"gorm.io/gorm"
)

var (
	mu sync.RWMutex
	db *gorm.DB
)

// Bind hands the shared DB handle to the job functions. Called once by the
// entry point before the scheduler starts.
func Bind(handle *gorm.DB) {
	mu.Lock()
	defer mu.Unlock()
	db = handle
}

func boundDB() *gorm.DB {
	mu.RLock()
	defer mu.RUnlock()
	return db
}
