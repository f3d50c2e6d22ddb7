package cmd

// Config carries process configuration read from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	// RedisAddr switches the progress cache to Redis when set;
	// empty keeps the in-process cache.
	RedisAddr string
}
