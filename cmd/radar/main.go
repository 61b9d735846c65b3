package main

import "github.com/IAG-Ent/build-your-own-radar/internal/cli"

func main() {
	cli.Execute()
}
