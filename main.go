package main

import "github.com/alexiusacademia/gophb/cmd"

func main() {
	cmd.Execute()
}
