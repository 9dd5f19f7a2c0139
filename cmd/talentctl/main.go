// Command talentctl ejecuta el motor de scoring sin base de datos: conversiones,
// quimica entre perfiles, riesgo de rotacion y lotes de fixtures deterministas.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
