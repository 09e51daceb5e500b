package diagram

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	shearColor  = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	momentColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	axialColor  = color.RGBA{R: 139, G: 69, B: 19, A: 255}
)

// Export writes the shear and moment diagrams next to each other on disk:
// "out.png" becomes "out-sfd.png" and "out-bmd.png". The extension selects
// the format (png, svg or pdf); anything else falls back to png. It returns
// the files written.
func Export(d Diagrams, title, filename string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filename, filepath.Ext(filename))
	switch ext {
	case ".png", ".svg", ".pdf":
	default:
		ext = ".png"
	}

	sfd := base + "-sfd" + ext
	bmd := base + "-bmd" + ext
	if err := ExportShear(d, title, sfd); err != nil {
		return nil, err
	}
	if err := ExportMoment(d, title, bmd); err != nil {
		return nil, err
	}
	files := []string{sfd, bmd}

	if d.HasAxial() {
		afd := base + "-afd" + ext
		if err := ExportAxial(d, title, afd); err != nil {
			return nil, err
		}
		files = append(files, afd)
	}
	return files, nil
}

// ExportShear exports the shear force diagram to an image file
func ExportShear(d Diagrams, title, filename string) error {
	return exportSeries(d.X, d.Shear.Total, title+" - Shear Force Diagram", "Shear", shearColor, filename)
}

// ExportMoment exports the bending moment diagram to an image file
func ExportMoment(d Diagrams, title, filename string) error {
	return exportSeries(d.X, d.Moment.Total, title+" - Bending Moment Diagram", "Moment", momentColor, filename)
}

// ExportAxial exports the axial force diagram to an image file
func ExportAxial(d Diagrams, title, filename string) error {
	return exportSeries(d.X, d.Axial, title+" - Axial Force Diagram", "Axial (tension +)", axialColor, filename)
}

func exportSeries(x, y []float64, title, ylabel string, c color.Color, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Distance from start"
	p.Y.Label.Text = ylabel

	// Close the outline on the axis so the fill covers the diagram area
	pts := make(plotter.XYs, 0, len(x)+2)
	if len(x) > 0 {
		pts = append(pts, plotter.XY{X: x[0], Y: 0})
	}
	for i := range x {
		pts = append(pts, plotter.XY{X: x[i], Y: y[i]})
	}
	if len(x) > 0 {
		pts = append(pts, plotter.XY{X: x[len(x)-1], Y: 0})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = c
	if rgba, ok := c.(color.RGBA); ok {
		rgba.A = 60
		line.FillColor = rgba
	}
	p.Add(line)

	// Zero reference line
	if len(x) > 0 {
		zeroLine, err := plotter.NewLine(plotter.XYs{
			{X: x[0], Y: 0},
			{X: x[len(x)-1], Y: 0},
		})
		if err != nil {
			return err
		}
		zeroLine.LineStyle.Width = vg.Points(1)
		zeroLine.LineStyle.Color = color.Gray{Y: 128}
		zeroLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(zeroLine)
	}
	p.Add(plotter.NewGrid())

	width := 8 * vg.Inch
	height := 4 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return p.Save(width, height, filename)
}

// HasAxial reports whether the member carries any axial force.
func (d Diagrams) HasAxial() bool {
	for _, a := range d.Axial {
		if a != 0 {
			return true
		}
	}
	return false
}
