package main

import "github.com/confkit/confkit/cmd/confkit/internal"

func main() {
	internal.Execute()
}
