package main

import "staygen/cmd"

func main() {
	cmd.Execute()
}
