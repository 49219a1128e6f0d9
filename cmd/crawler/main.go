package main

import (
	cmd "github.com/markopoloparadox/web-crawler/internal/cli"
)

func main() {
	cmd.Execute()
}
