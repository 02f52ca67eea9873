package main

import (
	"context"
	"log"

	"github.com/plantkeeper/plantkeeper/internal/client/config"
	"github.com/plantkeeper/plantkeeper/internal/web"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := web.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
