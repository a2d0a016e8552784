package main

import "skillbridge_backend/internal/app"

func main() {
	app.Run()
}
