package main

import "github.com/Mohsinsiddi/w3sdk/cmd"

func main() {
	cmd.Execute()
}
