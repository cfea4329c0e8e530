package main

import "github.com/katalvlaran/pqpath/cmd/pqpath/cmd"

func main() {
	cmd.Execute()
}
