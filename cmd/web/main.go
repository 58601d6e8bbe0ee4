package main

import "castlink_backend/internal/app"

func main() {
	app.Run()
}
