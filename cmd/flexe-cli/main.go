package main

import "github.com/nfrund/flexe/cmd/flexe-cli/cmd"

func main() {
	cmd.Execute()
}
