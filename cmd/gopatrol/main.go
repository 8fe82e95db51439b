package main

import "github.com/dbsmedya/gopatrol/cmd/gopatrol/cmd"

func main() {
	cmd.Execute()
}
