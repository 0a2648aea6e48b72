package main

import "ponto/cmd"

func main() {
	cmd.Execute()
}
