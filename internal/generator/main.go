package main

import (
	"path/filepath"
	"sync"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

var bgen = bavard.NewBatchGenerator(copyrightHolder, 2020, "groebner")

// templateData describes one gnark-crypto prime field wired into the solver:
// a field.Field adapter and a low degree root finder are generated per entry.
type templateData struct {
	Name     string // Go type name of the adapter
	Short    string // lowercase identifier, used in Name() and error strings
	FrImport string // gnark-crypto package path of the element type
	FrPkg    string // package selector of the element type
	FieldIs  string // completes "<Name> is ..." on the field adapter
	Over     string // completes "... over ..." on the root finder
}

//go:generate go run main.go
func main() {

	bn254 := templateData{
		Name:     "BN254",
		Short:    "bn254",
		FrImport: "github.com/consensys/gnark-crypto/ecc/bn254/fr",
		FrPkg:    "fr",
		FieldIs:  "the scalar field of the BN254 curve",
		Over:     "the BN254 scalar field",
	}
	babybear := templateData{
		Name:     "BabyBear",
		Short:    "babybear",
		FrImport: "github.com/consensys/gnark-crypto/field/babybear",
		FrPkg:    "babybear",
		FieldIs:  "the 31-bit prime field 2³¹ - 2²⁷ + 1",
		Over:     "the BabyBear field",
	}
	koalabear := templateData{
		Name:     "KoalaBear",
		Short:    "koalabear",
		FrImport: "github.com/consensys/gnark-crypto/field/koalabear",
		FrPkg:    "koalabear",
		FieldIs:  "the 31-bit prime field 2³¹ - 2²⁴ + 1",
		Over:     "the KoalaBear field",
	}

	datas := []templateData{bn254, babybear, koalabear}

	var wg sync.WaitGroup
	for _, d := range datas {
		wg.Add(1)
		go func(d templateData) {
			defer wg.Done()

			entries := []bavard.Entry{
				{File: filepath.Join("../../field", d.Short+".go"), Templates: []string{"field.go.tmpl"}},
			}
			if err := bgen.Generate(d, "field", "./template/", entries...); err != nil {
				panic(err)
			}

			entries = []bavard.Entry{
				{File: filepath.Join("../../roots", d.Short+".go"), Templates: []string{"roots.go.tmpl"}},
			}
			if err := bgen.Generate(d, "roots", "./template/", entries...); err != nil {
				panic(err)
			}
		}(d)
	}

	wg.Wait()
}
