package config

import "os"

type Config struct {
	ServerPort     string
	MongoURI       string
	MongoDB        string
	BaseURL        string
	RabbitURI      string
	RabbitExchange string
	SendgridAPIKey string
	EmailFrom      string
	EmailFromName  string
	CORSOrigins    string
}

func Load() *Config {
	return &Config{
		ServerPort:     getEnv("PORT", "3000"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:        getEnv("MONGO_DB", "quiz_portal"),
		BaseURL:        getEnv("BASE_URL", "http://localhost:3000"),
		RabbitURI:      getEnv("RABBITMQ_URI", ""),
		RabbitExchange: getEnv("RABBITMQ_EXCHANGE", ""),
		SendgridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailFrom:      getEnv("EMAIL_FROM", "noreply@quizportal.local"),
		EmailFromName:  getEnv("EMAIL_FROM_NAME", "Quiz Portal"),
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:5173"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
