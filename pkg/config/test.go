package config

func loadTestConfig(cfg *Config) {
	cfg.DatabaseFilePath = ":memory:"
	cfg.FrontendDir = ""
	// Unroutable so tests never reach the real Google Books API.
	cfg.GoogleBooksBaseURL = "http://127.0.0.1:1"
	cfg.ServerHost = "127.0.0.1"
	cfg.ServerPort = 0
}
