package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func CorsMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173,http://localhost:3000,http://localhost:8080",
		AllowMethods: "GET,POST,OPTIONS,HEAD",
		AllowHeaders: "Origin,Content-Type,Accept,X-Requested-With",
	})
}
