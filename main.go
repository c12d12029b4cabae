package main

import "github.com/IBM/SVCheck/cmd"

func main() {
	cmd.Execute()
}
