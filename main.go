package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/saqibullah/medmate/api"
	"github.com/saqibullah/medmate/form"
	"github.com/saqibullah/medmate/predict"
)

func main() {
	client := predict.New()
	h := api.NewHandler(form.New(client))

	r := gin.Default()
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	api.Register(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("serving symptom form on :%s, predictions via %s", port, client.Endpoint())
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
