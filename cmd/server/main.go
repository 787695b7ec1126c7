package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/studydeck/internal/config"
	"github.com/saulo-duarte/studydeck/internal/container"
	"github.com/saulo-duarte/studydeck/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		DocumentHandler:  c.DocumentContainer.Handler,
		FlashcardHandler: c.FlashcardContainer.Handler,
		QuizHandler:      c.QuizContainer.Handler,
		ProgressHandler:  c.ProgressContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(r).ProxyWithContext)
		return
	}

	port := config.GetEnv("PORT", "8080")
	logrus.Infof("Listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logrus.WithError(err).Fatal("Server stopped")
	}
}
