package main

import "partflow-sync/cmd"

func main() {
	cmd.Execute()
}
