package main

import "github.com/kekatzmann/jhu-covid19-analysis/cmd"

func main() {
	cmd.Execute()
}
