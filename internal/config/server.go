package config

type ServerConfig struct {
	HTTPAddr       string
	AllowedOrigins []string
	Metrics        bool
}

func loadServer() ServerConfig {
	return ServerConfig{
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		AllowedOrigins: listenv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		Metrics:        boolenv("METRICS_ENABLED", true),
	}
}
