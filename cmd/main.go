package main

import (
	"github.com/sirupsen/logrus"

	"fxproxy/internal/app"
)

// @title fxproxy API
// @version 1.0
// @description Caching proxy over a public exchange-rates provider with conversion and snapshot history.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.Fatal(err)
	}
}
