//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// sampleCountries seeds the catalog used for manual testing.
var sampleCountries = [][4]string{
	{"Argentina", "45376763", "2780400", "América"},
	{"Perú", "33715471", "1285216", "América"},
	{"Chile", "19116209", "756102", "América"},
	{"España", "47615034", "505990", "Europa"},
	{"Francia", "68042591", "551695", "Europa"},
	{"Japón", "124516650", "377975", "Asia"},
	{"Kenia", "54027487", "580367", "África"},
	{"Australia", "26439111", "7692024", "Oceanía"},
}

// Sample builds atlas and adds the sample countries to the default data
// directory. Countries already present are reported and skipped.
func Sample() error {
	mg.Deps(Build)
	bin := filepath.Join(binaryDir, binaryName)
	for _, c := range sampleCountries {
		err := sh.Run(bin, "add", "--name", c[0], "--population", c[1], "--area", c[2], "--continent", c[3])
		if err != nil {
			if sh.ExitStatus(err) == 1 {
				fmt.Printf("skip %s: already in catalog\n", c[0])
				continue
			}
			return err
		}
	}
	return sh.RunV(bin, "stats")
}
