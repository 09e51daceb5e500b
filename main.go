package main

import "github.com/alexiusacademia/gosdm/cmd"

func main() {
	cmd.Execute()
}
