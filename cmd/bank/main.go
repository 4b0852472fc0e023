// cmd/bank/main.go
package main

import (
	"fmt"
	"os"

	app "atombank/internal"
)

func main() {
	application := app.NewApplication()
	if err := application.Initialize(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize application:", err)
		os.Exit(1)
	}
	application.Run()
}
