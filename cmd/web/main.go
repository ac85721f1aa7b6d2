package main

import "recruitpro_backend/internal/app"

func main() {
	app.Run()
}
