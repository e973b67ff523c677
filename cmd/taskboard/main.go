package main

import "taskboard/internal/cli"

func main() {
	cli.Execute()
}
