package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/notargets/rbfspline/utils"
)

var (
	csvFile string
)

var errorColumns = []string{"fRMS", "dfRMS", "d2fRMS", "fMAX", "dfMAX", "d2fMAX"}

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	studies, err := readCSV(bufio.NewReader(f))
	if err != nil {
		panic(err)
	}
	keys := make([]string, 0, len(studies))
	for key := range studies {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		studies[key].Print(os.Stdout)
	}
}

type ConvergenceStudy struct {
	title, solver string
	numPTS        []int
	errors        [6][]float64 // Indexed like errorColumns
}

func NewConvergenceStudy(title, solver string) *ConvergenceStudy {
	return &ConvergenceStudy{
		title:  title,
		solver: solver,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, errs [6]float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	for i := range errs {
		cs.errors[i] = append(cs.errors[i], errs[i])
	}
}

// Orders returns the observed order between successive resolutions for each error column
func (cs *ConvergenceStudy) Orders() (orders [6][]float64) {
	idx := make([]int, len(cs.numPTS))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return cs.numPTS[idx[a]] < cs.numPTS[idx[b]] })
	n := make([]int, len(idx))
	for i, j := range idx {
		n[i] = cs.numPTS[j]
	}
	for c := range cs.errors {
		e := make([]float64, len(idx))
		for i, j := range idx {
			e[i] = cs.errors[c][j]
		}
		orders[c] = utils.ObservedOrder(n, e)
	}
	return
}

func (cs *ConvergenceStudy) Print(w io.Writer) {
	fmt.Fprintf(w, "Title = %s, Solver = %s\n", cs.title, cs.solver)
	for i := range cs.numPTS {
		fmt.Fprintf(w, "%d, %v, %v, %v, %v, %v, %v\n", cs.numPTS[i],
			cs.errors[0][i], cs.errors[1][i], cs.errors[2][i], cs.errors[3][i], cs.errors[4][i], cs.errors[5][i])
	}
	orders := cs.Orders()
	fmt.Fprintf(w, "Observed order:\n")
	for c, name := range errorColumns {
		fmt.Fprintf(w, "%8s:", name)
		for _, p := range orders[c] {
			if math.IsNaN(p) {
				fmt.Fprintf(w, " %6s", "-")
				continue
			}
			fmt.Fprintf(w, " %6.2f", p)
		}
		fmt.Fprintln(w)
	}
}

func readCSV(r io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records [][]string
		ok      bool
		cs      *ConvergenceStudy
	)
	studies = make(map[string]*ConvergenceStudy)
	if records, err = csv.NewReader(r).ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 || rec[0] == "Title" {
			continue
		}
		if len(rec) != 4+len(errorColumns) {
			return nil, fmt.Errorf("record %d has %d fields, expected %d", i, len(rec), 4+len(errorColumns))
		}
		title, nptstxt, solver := rec[0], rec[1], rec[2]
		var (
			npts int
			errs [6]float64
		)
		if npts, err = strconv.Atoi(nptstxt); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		combTitle := title + ":" + solver
		if cs, ok = studies[combTitle]; !ok {
			cs = NewConvergenceStudy(title, solver)
			studies[combTitle] = cs
		}
		for c := range errs {
			if errs[c], err = strconv.ParseFloat(rec[4+c], 64); err != nil {
				return nil, fmt.Errorf("record %d, column %s: %w", i, errorColumns[c], err)
			}
		}
		cs.Add(npts, errs)
	}
	return
}
