package main

import "github.com/nfrund/courseboard/cmd/coursectl/cmd"

func main() {
	cmd.Execute()
}
