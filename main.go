package main

import "github.com/alexiusacademia/gosolrad/cmd"

func main() {
	cmd.Execute()
}
