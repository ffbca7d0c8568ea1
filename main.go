package main

import "github.com/alexiusacademia/gofooting/cmd"

func main() {
	cmd.Execute()
}
