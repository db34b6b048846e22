package main

import "github.com/joblyhq/jobs-api/cmd"

func main() {
	cmd.Execute()
}
