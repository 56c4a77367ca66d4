// Package main es la CLI de preparación del catálogo de razas.
//
// Uso:
//
//	breedctl init
//	breedctl generate
//	breedctl show "Maine Coon" --markdown
//	breedctl export --format yaml
package main

func main() {
	Execute()
}
