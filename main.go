package main

import "github.com/kamusis/vecpair/cmd"

func main() {
	cmd.Execute()
}
