package main

import (
	"os"

	"github.com/ChristianRemschi/QuizApp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
