package main

import (
	"fmt"
	"math"
	"os"

	ui "github.com/gizak/termui"

	"github.com/nimezhu/chrom3d"
	"github.com/nimezhu/chrom3d/structure"
)

func regionText(chr string, start int, end int) string {
	return fmt.Sprintf("%s:%d-%d", chr, start, end)
}

//centroidDists : per-locus distance from the structure centroid, the
//profile rendered in the sparkline.
func centroidDists(s *structure.Structure) []float64 {
	coords := s.Coords()
	n := float64(len(coords))
	if n == 0 {
		return nil
	}
	var centroid [3]float64
	for _, c := range coords {
		centroid[0] += c[0]
		centroid[1] += c[1]
		centroid[2] += c[2]
	}
	centroid[0] /= n
	centroid[1] /= n
	centroid[2] /= n
	dists := make([]float64, len(coords))
	for i, c := range coords {
		dx := c[0] - centroid[0]
		dy := c[1] - centroid[1]
		dz := c[2] - centroid[2]
		dists[i] = math.Sqrt(dx*dx + dy*dy + dz*dz)
	}
	return dists
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: c3dterm <structure or contact file>")
		os.Exit(1)
	}
	s, err := chrom3d.Load(os.Args[1])
	if err != nil {
		panic(err)
	}
	dists := centroidDists(s)
	genCoords := s.GenCoords()
	if len(dists) == 0 {
		fmt.Println("no points in", os.Args[1])
		os.Exit(1)
	}

	err = ui.Init()
	if err != nil {
		panic(err)
	}
	defer ui.Close()

	p := ui.NewPar("")
	p.Height = 3
	p.Width = 50
	p.TextFgColor = ui.ColorWhite
	p.BorderLabel = "Region"
	p.BorderFg = ui.ColorCyan

	maxDiv := ui.NewPar("")
	maxDiv.Height = 3
	maxDiv.BorderLabel = "max"
	maxDiv.Width = 20
	maxDiv.Y = 5
	minDiv := ui.NewPar("")
	minDiv.BorderLabel = "min"
	minDiv.Height = 3
	minDiv.Width = 20
	minDiv.Y = 8

	spl := ui.NewSparkline()

	window := 100
	if window > len(dists) {
		window = len(dists)
	}
	start := 0

	/* update spl */
	update := func(start int) {
		end := start + window
		if end > len(dists) {
			end = len(dists)
		}
		v := dists[start:end]
		data := make([]int, len(v))
		p.Text = regionText(s.Chrom.Name, genCoords[start], genCoords[end-1]+s.Chrom.Res)
		max := v[0]
		min := v[0]
		for i, v0 := range v {
			data[i] = int(v0 * 100)
			if max < v0 {
				max = v0
			}
			if min > v0 {
				min = v0
			}
		}
		spl.Data = data
		spl.Title = os.Args[1]
		spl.LineColor = ui.ColorGreen
		spls := ui.NewSparklines(spl)
		spls.Height = 5
		spls.Width = 100
		spls.Y = 5
		spls.X = 20

		maxDiv.Text = fmt.Sprintf("%.2f", max)
		minDiv.Text = fmt.Sprintf("%.2f", min)
		ui.Render(p, spls, maxDiv, minDiv)
	}
	update(start)
	ui.Handle("/sys/kbd/q", func(ui.Event) {
		// press q to quit
		ui.StopLoop()
	})
	ui.Handle("/sys/kbd/j", func(ui.Event) {
		start -= window / 2
		if start < 0 {
			start = 0
		}
		update(start)
	})
	ui.Handle("/sys/kbd/l", func(ui.Event) {
		start += window / 2
		if start+window > len(dists) {
			start = len(dists) - window
		}
		if start < 0 {
			start = 0
		}
		update(start)
	})
	ui.Loop()
}
