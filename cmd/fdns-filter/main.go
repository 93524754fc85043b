// cmd/fdns-filter/main.go
package main

import (
	"fdnsfilter/internal/app"
	"fdnsfilter/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
