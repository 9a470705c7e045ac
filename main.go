package main

import "log-merger/cmd"

func main() {
	cmd.Execute()
}
