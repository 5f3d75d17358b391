package main

import "github.com/example/tablekeeper/internal/cli"

func main() {
	cli.Execute()
}
