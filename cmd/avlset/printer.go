package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cryptonstudio/avlset/script"
)

var _ script.Reporter = &Printer{}

// Printer writes operation results as text and counts them.
type Printer struct {
	out         io.Writer
	adds        uint64
	removes     [2]uint64 // removed, missing
	queries     uint64
	errors      uint64
	totalCalls  uint64
	checkPassed uint64
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) OnAdd(value string, count int) {
	p.adds++
	p.totalCalls++
	fmt.Fprintf(p.out, "add %s: count %d\n", value, count)
}

func (p *Printer) OnRemove(value string, removed bool, count int) {
	p.totalCalls++
	if removed {
		p.removes[0]++
		fmt.Fprintf(p.out, "remove %s: count %d\n", value, count)
		return
	}
	p.removes[1]++
	fmt.Fprintf(p.out, "remove %s: not found\n", value)
}

func (p *Printer) OnClear() {
	p.totalCalls++
	fmt.Fprintln(p.out, "clear")
}

func (p *Printer) OnContains(value string, found bool) {
	p.queries++
	p.totalCalls++
	fmt.Fprintf(p.out, "contains %s: %t\n", value, found)
}

func (p *Printer) OnCount(count int) {
	p.queries++
	p.totalCalls++
	fmt.Fprintf(p.out, "count: %d\n", count)
}

func (p *Printer) OnList(values []string) {
	p.queries++
	p.totalCalls++
	fmt.Fprintf(p.out, "list: [%s]\n", strings.Join(values, " "))
}

func (p *Printer) OnPrint(tree string) {
	p.queries++
	p.totalCalls++
	fmt.Fprint(p.out, tree)
}

func (p *Printer) OnCheck(count int, height int) {
	p.checkPassed++
	p.totalCalls++
	fmt.Fprintf(p.out, "check: ok (count %d, height %d)\n", count, height)
}

func (p *Printer) OnStats(stats script.Stats) {
	p.queries++
	p.totalCalls++
	fmt.Fprintf(p.out, "stats: count %d, distinct %d, height %d, min %q, max %q\n",
		stats.Count, stats.Distinct, stats.Height, stats.Min, stats.Max)
}

func (p *Printer) OnError(op script.Op, err error) {
	p.errors++
	fmt.Fprintf(p.out, "error: %s at line %d: %v\n", op.Kind, op.Line, err)
}

func (p *Printer) PrintStatistics(elapsed time.Duration) {
	fmt.Fprintf(p.out, "SCRIPT STATISTICS:\n")
	fmt.Fprintf(p.out, "Adds %17d\n", p.adds)
	fmt.Fprintf(p.out, "Removes %14d\n", p.removes[0])
	fmt.Fprintf(p.out, "Missing removes %6d\n", p.removes[1])
	fmt.Fprintf(p.out, "Queries %14d\n", p.queries)
	fmt.Fprintf(p.out, "Checks passed %8d\n", p.checkPassed)
	fmt.Fprintf(p.out, "Errors %15d\n", p.errors)
	fmt.Fprintf(p.out, "Total calls %10d\n", p.totalCalls)
	fmt.Fprintf(p.out, "Time elapsed: %f seconds\n", elapsed.Seconds())
}
