package main

import "github.com/eita-x/face-mosaic-oval/internal/cli"

func main() {
	cli.Execute()
}
