package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/inkfield"
	"honnef.co/go/inkfield/internal/piece"
)

func testDrawing() *piece.Drawing {
	return &piece.Drawing{
		Hash:   "0xabc",
		Width:  40,
		Height: 30,
		Strokes: []inkfield.Stroke{
			{Ink: 1, Points: []inkfield.Point{inkfield.Pt(5, 5), inkfield.Pt(35, 5)}},
			{Ink: 0, Points: []inkfield.Point{inkfield.Pt(5, 10), inkfield.Pt(20.04, 10), inkfield.Pt(35, 25)}},
			{Ink: 1, Points: []inkfield.Point{inkfield.Pt(5, 20), inkfield.Pt(35, 20)}},
		},
		Palette: []piece.Ink{{Name: "Black", Color: "#000000"}, {Name: "Vermilion", Color: "#e34234"}},
		Traits:  []piece.Trait{{Name: "Inks", Value: "Black & Vermilion"}},
	}
}

type svgDoc struct {
	Width   string `xml:"width,attr"`
	Height  string `xml:"height,attr"`
	ViewBox string `xml:"viewBox,attr"`
	Title  string `xml:"title"`
	Desc   string `xml:"desc"`
	Groups []struct {
		ID        string `xml:"id,attr"`
		Polylines []struct {
			Points string `xml:"points,attr"`
		} `xml:"polyline"`
	} `xml:"g"`
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, testDrawing()); err != nil {
		t.Fatal(err)
	}
	var doc svgDoc
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not XML: %v\n%s", err, buf.String())
	}
	if doc.Width != "40mm" || doc.Height != "30mm" {
		t.Errorf("got size %s x %s, want 40mm x 30mm", doc.Width, doc.Height)
	}
	if doc.ViewBox != "0 0 400 300" {
		t.Errorf("got viewBox %q, want \"0 0 400 300\"", doc.ViewBox)
	}
	if doc.Title != "0xabc" {
		t.Errorf("got title %q", doc.Title)
	}
	if !strings.Contains(doc.Desc, "Black & Vermilion") {
		t.Errorf("traits missing from description %q", doc.Desc)
	}

	var ids []string
	var counts []int
	for _, g := range doc.Groups {
		ids = append(ids, g.ID)
		counts = append(counts, len(g.Polylines))
	}
	if d := cmp.Diff([]string{"layer1", "layer2"}, ids); d != "" {
		t.Errorf("layers (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]int{1, 2}, counts); d != "" {
		t.Errorf("polylines per layer (-want +got):\n%s", d)
	}
	if got := strings.Fields(doc.Groups[0].Polylines[0].Points); !cmp.Equal(got, []string{"50,100", "200,100", "350,250"}) {
		t.Errorf("got points %q", got)
	}
}

func TestWriteSVGFractionalPage(t *testing.T) {
	d := testDrawing()
	d.Width, d.Height = 210.5, 297.25
	var buf bytes.Buffer
	if err := WriteSVG(&buf, d); err != nil {
		t.Fatal(err)
	}
	var doc svgDoc
	if err := xml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	got := []string{doc.Width, doc.Height, doc.ViewBox}
	want := []string{"210.5mm", "297.25mm", "0 0 2105 2972.5"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("page attributes (-want +got):\n%s", d)
	}
}

func TestWriteSVGDeterministic(t *testing.T) {
	var a, b bytes.Buffer
	if err := WriteSVG(&a, testDrawing()); err != nil {
		t.Fatal(err)
	}
	if err := WriteSVG(&b, testDrawing()); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("same drawing rendered to different SVG")
	}
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriteSVGError(t *testing.T) {
	if err := WriteSVG(failingWriter{}, testDrawing()); !errors.Is(err, errDiskFull) {
		t.Errorf("got %v, want %v", err, errDiskFull)
	}
}

func TestRenderPNG(t *testing.T) {
	img := RenderPNG(testDrawing(), 4)
	if b := img.Bounds(); b.Dx() != 160 || b.Dy() != 120 {
		t.Fatalf("got bounds %v, want 160x120", b)
	}
	white := color.RGBAModel.Convert(color.White)
	if got := color.RGBAModel.Convert(img.At(2, 2)); got != white {
		t.Errorf("paper at (2, 2) is %v, want white", got)
	}
	// Middle of the first stroke, drawn in vermilion.
	r, g, b, _ := img.At(80, 20).RGBA()
	if !(r > g && r > b) {
		t.Errorf("stroke pixel (%d, %d, %d) is not vermilion", r>>8, g>>8, b>>8)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preview.png")
	if err := SavePNG(path, testDrawing(), 2); err != nil {
		t.Fatal(err)
	}
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "preview.png"), testDrawing(), 2); err == nil {
		t.Error("saving into a missing directory succeeded")
	}
}
