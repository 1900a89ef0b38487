// cmd/bcmodel/main.go
package main

import (
	"bcmodel/internal/app"
	"bcmodel/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
