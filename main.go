package main

import "github.com/friis-dev/hopp/cmd"

func main() {
	cmd.Execute()
}
