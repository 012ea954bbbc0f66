/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/sumwatshade/weathersynth/cmd"

func main() {
	cmd.Execute()
}
