package main

import "github.com/avenlon/domainwatch/internal/cli"

func main() {
	cli.Execute()
}
