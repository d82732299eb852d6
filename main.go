package main

import "github.com/sriramreddydwarampudi/sridaw/cmd"

func main() {
	cmd.Execute()
}
