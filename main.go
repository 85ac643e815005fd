package main

import "github.com/agentic-research/buildaux/cmd"

func main() {
	cmd.Execute()
}
