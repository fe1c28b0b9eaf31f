package main

import "github.com/jusunglee/metro-go/internal/cli"

func main() {
	cli.Execute()
}
