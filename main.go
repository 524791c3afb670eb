package main

import "github.com/Rorical/nextword/cmd"

func main() {
	cmd.Execute()
}
