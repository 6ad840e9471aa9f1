package main

import "github.com/VoxDroid/vrforce/cmd"

func main() {
	cmd.Execute()
}
