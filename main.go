package main

import "vendor-rates/cmd"

func main() {
	cmd.Execute()
}
