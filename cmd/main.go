package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Capryc0rne/CUBE/internal/server"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Warn("no .env file found, relying on environment")
	}

	if err := server.Start(); err != nil {
		logrus.WithError(err).Fatal("server failed to start")
	}
}
