package main

import (
	"fmt"
	"log"
	"os"
	"tinyhttpd/internal/bootstrap"
	"tinyhttpd/internal/config"
	"tinyhttpd/internal/version"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Println(version.GetVersion())
		return
	}

	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	conf, err := config.MustLoad()
	if err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
	}

	app, err := bootstrap.New(conf)
	if err != nil {
		log.Fatalf("Failed to initialize application: %s", err)
	}

	if err = app.Run(); err != nil {
		log.Fatalf("Application error: %s", err)
	}
}
