package main

import "fittrack/cmd/fittrack/cmd"

func main() {
	cmd.Execute()
}
