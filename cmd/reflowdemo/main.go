// Command reflowdemo demonstrates the reflow layout engine.
package main

import (
	"flag"
	"fmt"
	"log"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/reflow"
	"github.com/gogpu/reflow/text"
)

func main() {
	var (
		width  = flag.Float64("width", 640, "viewport width in pixels")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	fonts := text.NewCatalog()
	if _, err := fonts.AddBytes("sans", goregular.TTF); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	if _, err := fonts.AddBytes("sans-bold", gobold.TTF); err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	doc := reflow.Element("body", reflow.Style{
		Background: reflow.Hex("#fafafa"),
		Padding:    reflow.UniformEdges(24),
		FontFamily: "sans",
		FontSize:   15,
		Color:      reflow.Hex("#222222"),
	},
		headingSection(),
		boxModelSection(),
		wrappingSection(*width),
	)

	engine := reflow.NewEngine(fonts)
	box, err := engine.Layout(doc, *width)
	if err != nil {
		log.Fatalf("Layout failed: %v", err)
	}

	canvas := reflow.Render(box)
	if err := canvas.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, canvas.Width(), canvas.Height())
}

func headingSection() *reflow.ContentNode {
	return reflow.Element("header", reflow.Style{
		Margin: reflow.Edges{Bottom: 18},
	},
		reflow.Element("h1", reflow.Style{
			FontFamily: "sans-bold",
			FontSize:   30,
			Color:      reflow.Hex("#1a1a2e"),
		}, reflow.Text("reflow")),
		reflow.Element("sub", reflow.Style{
			FontSize: 13,
			Color:    reflow.Hex("#777777"),
		}, reflow.Text("content trees in, pixels out")),
	)
}

func boxModelSection() *reflow.ContentNode {
	chip := func(label, bg, border string) *reflow.ContentNode {
		return reflow.Element("chip", reflow.Style{
			Background:  reflow.Hex(bg),
			BorderColor: reflow.Hex(border),
			BorderWidth: reflow.UniformEdges(2),
			Padding:     reflow.UniformEdges(8),
			Margin:      reflow.Edges{Bottom: 8},
			FontSize:    13,
		}, reflow.Text(label))
	}

	return reflow.Element("section", reflow.Style{
		Margin: reflow.Edges{Bottom: 18},
	},
		reflow.Element("h2", reflow.Style{
			FontFamily: "sans-bold",
			FontSize:   18,
			Margin:     reflow.Edges{Bottom: 8},
		}, reflow.Text("Boxes")),
		chip("Backgrounds fill the padding box.", "#e8f4f8", "#4a90a4"),
		chip("Borders sit outside the padding.", "#fdf0e5", "#e76f51"),
		chip("Margins keep neighbors apart.", "#eef7ee", "#2a9d8f"),
	)
}

func wrappingSection(width float64) *reflow.ContentNode {
	return reflow.Element("section", reflow.Style{},
		reflow.Element("h2", reflow.Style{
			FontFamily: "sans-bold",
			FontSize:   18,
			Margin:     reflow.Edges{Bottom: 8},
		}, reflow.Text("Text")),
		reflow.Element("p", reflow.Style{
			Background: reflow.White,
			Padding:    reflow.UniformEdges(10),
		},
			reflow.Text("Runs are shaped glyph by glyph, wrapped greedily against the "+
				"available width, and composited line by line onto their own surfaces. "),
			reflow.Element("em", reflow.Style{
				Display:    reflow.DisplayInline,
				FontFamily: "sans-bold",
			}, reflow.Text("Inline spans")),
			reflow.Text(fmt.Sprintf(" share lines with their siblings and may wrap "+
				"across them; this paragraph was laid out at %g pixels.", width)),
		),
	)
}
