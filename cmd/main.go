package main

import (
	"log"

	"github.com/victornm/quizduel/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
