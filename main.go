package main

import "github.com/johnfelipe/HarmonyLab/cmd"

func main() {
	cmd.Execute()
}
