package main

import (
	"os"

	"github.com/GoFolio/GoFolio/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
