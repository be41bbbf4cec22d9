package main

import "cinema-ticketing/cmd"

func main() {
	cmd.Execute()
}
