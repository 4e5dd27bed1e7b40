package main

import (
	"log"

	"github.com/somi-im/somi/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ somi failed to start: %v", err)
	}
}
