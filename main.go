package main

import "github.com/parkconserve/park-management/cmd"

func main() {
	cmd.Execute()
}
