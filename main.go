package main

import "github.com/sadopc/offwork/internal/cli"

func main() {
	cli.Execute()
}
