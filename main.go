package main

import "github.com/PasqualeAiello/io-app/cmd"

var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
