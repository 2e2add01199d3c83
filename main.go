package main

import "github.com/Hollywoodr19/programming-bot-2025/cmd"

func main() {
	cmd.Execute()
}
