// cmd/simdnums/main.go
package main

import (
	"github.com/biggeezerdevelopment/simdnums/internal/appshell"
	"github.com/biggeezerdevelopment/simdnums/internal/cli"
)

func main() { appshell.Main(cli.Run) }
