package utils

import (
	"image/color"
	"math"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

type ColorName uint8

const (
	White ColorName = iota
	Blue
	Red
	Green
	Black
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case White:
		c = utils2.WHITE
	case Blue:
		c = color.RGBA{R: 50, G: 0, B: 255, A: 0}
	case Red:
		c = utils2.RED
	case Green:
		c = utils2.GREEN
	case Black:
		c = utils2.BLACK
	}
	return
}

// LineChart accumulates line segments per color and renders them on Show.
type LineChart struct {
	Lines                  map[color.RGBA][]float32
	XMin, XMax, YMin, YMax float32
	empty                  bool
}

func NewLineChart() (lc *LineChart) {
	return &LineChart{
		Lines: make(map[color.RGBA][]float32),
		XMin:  math.MaxFloat32, XMax: -math.MaxFloat32,
		YMin: math.MaxFloat32, YMax: -math.MaxFloat32,
		empty: true,
	}
}

// AddCurve adds a polyline through the points (x[i], f[i])
func (lc *LineChart) AddCurve(x, f []float64, col color.RGBA) {
	for i := 0; i < len(x)-1; i++ {
		lc.addSegment(x[i], f[i], x[i+1], f[i+1], col)
	}
}

// AddCrossHairs marks each point (x[i], f[i]) with a small cross
func (lc *LineChart) AddCrossHairs(x, f []float64, size float64, col color.RGBA) {
	for i := range x {
		lc.addSegment(x[i]-size, f[i], x[i]+size, f[i], col)
		lc.addSegment(x[i], f[i]-size, x[i], f[i]+size, col)
	}
}

func (lc *LineChart) addSegment(x1, y1, x2, y2 float64, col color.RGBA) {
	lc.Lines[col] = append(lc.Lines[col],
		float32(x1), float32(y1),
		float32(x2), float32(y2),
	)
	lc.extend(float32(x1), float32(y1))
	lc.extend(float32(x2), float32(y2))
}

func (lc *LineChart) extend(x, y float32) {
	lc.empty = false
	if x < lc.XMin {
		lc.XMin = x
	}
	if x > lc.XMax {
		lc.XMax = x
	}
	if y < lc.YMin {
		lc.YMin = y
	}
	if y > lc.YMax {
		lc.YMax = y
	}
}

// Show opens the chart window and blocks until the process is terminated
func (lc *LineChart) Show(width, height int) {
	if lc.empty {
		return
	}
	ch := chart2d.NewChart2D(lc.XMin, lc.XMax, lc.YMin, lc.YMax,
		width, height, utils2.WHITE, utils2.BLACK)
	for col, line := range lc.Lines {
		ch.AddLine(line, col)
	}
	select {}
}
