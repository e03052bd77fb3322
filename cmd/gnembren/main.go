package main

import "github.com/gnanesh-16/Gnembren-captions/internal/cli"

// main is the application entry point
func main() {
	cli.Main()
}
