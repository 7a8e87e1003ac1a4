package main

import (
	"github.com/salesboard/backend/cmd/app"
)

func main() {
	app.Run()
}
