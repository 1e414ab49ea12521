// cmd/chromsplit/main.go
package main

import (
	"chromsplit/internal/app"
	"chromsplit/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
