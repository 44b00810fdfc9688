package main

import "github.com/mehmetkahya0/f1-race-prediction/cmd"

func main() {
	cmd.Execute()
}
