package main

import "github.com/vlad/classgen-go/internal/cli"

func main() {
	cli.Execute()
}
