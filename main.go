package main

import "github.com/nine-hub/api/cmd"

func main() {
	cmd.Execute()
}
