package main

import "devjobs_backend/internal/app"

func main() {
	app.Run()
}
