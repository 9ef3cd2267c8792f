package main

import "workforce_backend/internal/app"

func main() {
	app.Run()
}
