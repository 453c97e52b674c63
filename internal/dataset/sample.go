package dataset

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"github.com/davetashner/turbodash/internal/table"
)

//go:embed data/gapminder.csv
var gapminderCSV []byte

var (
	gapminderOnce sync.Once
	gapminder     *table.Table
	gapminderErr  error
)

// Gapminder returns the bundled gapminder extract (country, continent,
// year, lifeExp, pop, gdpPercap, iso_alpha, iso_num).
func Gapminder() *table.Table {
	gapminderOnce.Do(func() {
		gapminder, gapminderErr = ReadCSV(bytes.NewReader(gapminderCSV), 0)
	})
	if gapminderErr != nil {
		panic(fmt.Sprintf("dataset: embedded gapminder: %v", gapminderErr))
	}
	return gapminder
}

var samples = map[string]func() *table.Table{
	"gapminder": Gapminder,
}

// Sample returns a bundled table by name.
func Sample(name string) (*table.Table, error) {
	fn, ok := samples[name]
	if !ok {
		return nil, fmt.Errorf("unknown sample %q (have %v)", name, SampleNames())
	}
	return fn(), nil
}

// SampleNames lists the bundled tables.
func SampleNames() []string {
	names := make([]string, 0, len(samples))
	for n := range samples {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
