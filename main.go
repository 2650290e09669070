package main

import "github.com/TommyZ-7/list-checker-tauri/cmd"

func main() {
	cmd.Execute()
}
