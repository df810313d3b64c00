package config

// GetAuthSkipperPaths returns a list of paths to skip authentication for
func GetAuthSkipperPaths() []string {
	// Login is the only public API path; health lives outside /api
	return []string{"/api/login"}
}
