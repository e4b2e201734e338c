package main

import (
	"log"

	"github.com/emkr-13/sim-admin/internal/config"
	"github.com/emkr-13/sim-admin/internal/stub"
)

func main() {
	cfg := config.Load()
	e := stub.New().Handler()
	log.Printf("stub backend listening on :%s (admin@mail.com / password123)", cfg.StubPort)
	e.Logger.Fatal(e.Start(":" + cfg.StubPort))
}
