package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/saqibullah/medmate/form"
	"github.com/saqibullah/medmate/predict"
	"github.com/saqibullah/medmate/prompt"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := prompt.NewSession(prompt.NewSurveyDriver(), form.New(predict.New()))
	session.OnFailure = func(o form.Outcome) {
		log.Printf("prediction %s failed: %v", o.ID, o.Err)
	}

	if err := session.Run(ctx); err != nil {
		if errors.Is(err, prompt.ErrAborted) || errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		log.Fatalf("session failed: %v", err)
	}
}
