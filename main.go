package main

import (
	"log"
	"strings"
	"time"

	"quiz-portal/internal/config"
	"quiz-portal/internal/db"
	"quiz-portal/internal/event"
	"quiz-portal/internal/handlers"
	"quiz-portal/internal/mailer"
	"quiz-portal/internal/repository"
	"quiz-portal/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()

	db.InitMongo(cfg.MongoURI)
	database := db.Client.Database(cfg.MongoDB)

	// RabbitMQ event publisher
	var publisher *event.Publisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, lifecycle events will not be published")
	}

	var mail mailer.Mailer
	if cfg.SendgridAPIKey != "" {
		mail = mailer.NewSendgridMailer(cfg.SendgridAPIKey, cfg.EmailFromName, cfg.EmailFrom)
	} else {
		log.Println("SendGrid not configured, result emails go to the console")
		mail = mailer.NewConsoleMailer()
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Quizzes
	quizRepo := repository.NewQuizRepository(database)
	quizService := service.NewQuizService(quizRepo, cfg.BaseURL)
	quizHandler := handlers.NewQuizHandler(quizService)
	adminHandler := handlers.NewAdminHandler(quizService)

	// Responses
	responseRepo := repository.NewResponseRepository(database)
	responseService := service.NewResponseService(responseRepo, mail)
	responseHandler := handlers.NewResponseHandler(responseService)

	admin := r.Group("/admin/quiz")
	{
		admin.POST("/create", func(c *gin.Context) {
			adminHandler.CreateQuiz(c)
			if publisher != nil {
				publisher.Publish("quiz.created", gin.H{"timestamp": time.Now()})
			}
		})
	}

	quiz := r.Group("/quiz")
	{
		quiz.GET("/quizzes", quizHandler.ListQuizzes)
		quiz.GET("/:id", quizHandler.GetQuiz)
		quiz.DELETE("/:id", func(c *gin.Context) {
			quizHandler.DeleteQuiz(c)
			if publisher != nil {
				publisher.Publish("quiz.deleted", gin.H{"id": c.Param("id"), "timestamp": time.Now()})
			}
		})
	}

	response := r.Group("/response")
	{
		response.GET("/responses", responseHandler.ListResponses)
		response.GET("/subjects", responseHandler.ListSubjects)
		response.POST("/submit", func(c *gin.Context) {
			responseHandler.SubmitResponse(c)
			if publisher != nil {
				publisher.Publish("response.submitted", gin.H{"timestamp": time.Now()})
			}
		})
		response.POST("/send-results", func(c *gin.Context) {
			responseHandler.SendResults(c)
			if publisher != nil {
				publisher.Publish("results.sent", gin.H{"timestamp": time.Now()})
			}
		})
	}

	r.Run(":" + cfg.ServerPort)
}
