// The latgso-demo program builds a lattice basis from a text file, drives
// a handful of GSO engine operations against it, and prints the resulting
// mu/r tables and derived metrics. It stands in for the reduction drivers
// (LLL, BKZ) that would normally be the engine's caller: it discovers
// rows, runs one bracketed row operation, and reports what changed.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/flintgso/latgso/bigz"
	"github.com/flintgso/latgso/gso"
	"github.com/flintgso/latgso/latvec"
	"github.com/flintgso/latgso/metric"
)

func main() {
	path := flag.String("basis", "", "path to a whitespace-separated integer matrix, one row per line (required)")
	reduceRow := flag.Int("reduce", -1, "row index to reduce against row-1 via a single row_sub (negative to skip)")
	verbose := flag.Bool("v", false, "log each step as it runs")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "missing -basis")
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	b, err := readBasis(f)
	if err != nil {
		log.Fatal(err)
	}

	g, err := gso.New(b, gso.WithRowExpo())
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		log.Printf("loaded basis: %d rows x %d cols", g.BNRows(), g.BNCols())
	}

	d := g.D()
	for i := 0; i < d; i++ {
		g.UpdateGSORow(i, i)
	}
	printTables(g, d)

	if *reduceRow >= 1 && *reduceRow < d {
		i, j := *reduceRow, *reduceRow-1
		if *verbose {
			log.Printf("row_sub(%d, %d)", i, j)
		}
		g.RowOpBegin(0, d)
		g.RowSub(i, j)
		g.RowOpEnd(0, d)
		for i := 0; i < d; i++ {
			g.UpdateGSORow(i, i)
		}
		fmt.Println("after row_sub:")
		printTables(g, d)
	}

	fmt.Printf("log_det(0,%d)  = %g\n", d, metric.LogDet(g, 0, d))
	fmt.Printf("root_det(0,%d) = %g\n", d, metric.RootDet(g, 0, d))
	fmt.Printf("slope(0,%d)    = %g\n", d, metric.CurrentSlope(g, 0, d))
}

// readBasis parses one row per non-blank, non-comment (#-prefixed) line of
// whitespace-separated base-10 integers.
func readBasis(f *os.File) (*latvec.Matrix, error) {
	var rows [][]int64
	ncols := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]int64, len(fields))
		for j, s := range fields {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("basis: %w", err)
			}
			row[j] = v
		}
		if len(row) > ncols {
			ncols = len(row)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("basis: no rows in input")
	}

	m := latvec.NewMatrix(len(rows), ncols)
	for i, row := range rows {
		for j, v := range row {
			m.Row(i).Set(j, bigz.NewInt(v))
		}
	}
	return m, nil
}

func printTables(g *gso.GSO, d int) {
	for i := 0; i < d; i++ {
		fmt.Printf("r(%d,%d) = %g\n", i, i, g.GetR(i, i))
		for j := 0; j < i; j++ {
			fmt.Printf("  mu(%d,%d) = %g\n", i, j, g.GetMu(i, j))
		}
	}
}
