package source

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cheekybits/is"
	"github.com/jonas-p/go-shp"

	"github.com/leifgehrmann/lego-art-map-blog-post/model"
)

// Clockwise square, shapefile exterior orientation
func shpSquare(x, y, size float64) []shp.Point {
	return []shp.Point{
		{X: x, Y: y},
		{X: x, Y: y + size},
		{X: x + size, Y: y + size},
		{X: x + size, Y: y},
		{X: x, Y: y},
	}
}

func reversed(points []shp.Point) []shp.Point {
	out := make([]shp.Point, len(points))
	for i := range points {
		out[i] = points[len(points)-i-1]
	}
	return out
}

func writeShapefile(is is.I, folder string, records ...[][]shp.Point) string {
	filename := filepath.Join(folder, "fixture.shp")
	w, err := shp.Create(filename, shp.POLYGON)
	is.NoErr(err)

	w.SetFields([]shp.Field{shp.StringField("NAME", 16)})
	for i, parts := range records {
		n := w.Write(shp.NewPolygon(parts))
		w.WriteAttribute(int(n), 0, "record")
		is.Equal(int(n), i)
	}
	w.Close()
	return filename
}

func TestReadShapefile(t *testing.T) {
	is := is.New(t)

	folder := t.TempDir()
	filename := writeShapefile(is, folder,
		[][]shp.Point{shpSquare(0, 0, 10), reversed(shpSquare(2, 2, 2))},
		[][]shp.Point{shpSquare(20, 20, 5)},
	)

	polygons, err := ReadShapefile(filename, Options{})
	is.NoErr(err)
	is.Equal(len(polygons), 2)

	is.Equal(len(polygons[0].Interiors), 1)
	is.Equal(len(polygons[0].Exterior), 5)
	is.True(polygons[0].Exterior.IsClockwise())
	is.False(polygons[0].Interiors[0].IsClockwise())
	is.Equal(polygons[0].Area(), 96.0)

	is.Equal(len(polygons[1].Interiors), 0)
	is.Equal(polygons[1].Exterior[0], model.Coordinate{20, 20})
}

func TestReadShapefileMultipleExteriors(t *testing.T) {
	is := is.New(t)

	folder := t.TempDir()
	filename := writeShapefile(is, folder,
		[][]shp.Point{
			shpSquare(0, 0, 10),
			shpSquare(30, 0, 10),
			reversed(shpSquare(32, 2, 2)),
		},
	)

	polygons, err := ReadShapefile(filename, Options{})
	is.NoErr(err)
	is.Equal(len(polygons), 2)
	is.Equal(len(polygons[0].Interiors), 0)
	is.Equal(len(polygons[1].Interiors), 1)
}

func TestReadShapefileMinArea(t *testing.T) {
	is := is.New(t)

	folder := t.TempDir()
	filename := writeShapefile(is, folder,
		[][]shp.Point{shpSquare(0, 0, 10), shpSquare(50, 50, 0.001)},
	)

	polygons, err := ReadShapefile(filename, Options{})
	is.NoErr(err)
	is.Equal(len(polygons), 2)

	polygons, err = ReadShapefile(filename, Options{MinArea: 1e-5})
	is.NoErr(err)
	is.Equal(len(polygons), 1)
}

func TestReadShapefileMissing(t *testing.T) {
	is := is.New(t)

	_, err := ReadShapefile(filepath.Join(t.TempDir(), "missing.shp"), Options{})
	is.Err(err)
}

func TestReadZip(t *testing.T) {
	is := is.New(t)

	folder := t.TempDir()
	writeShapefile(is, folder, [][]shp.Point{shpSquare(0, 0, 10)})

	zipfile := filepath.Join(t.TempDir(), "land.zip")
	out, err := os.Create(zipfile)
	is.NoErr(err)
	zw := zip.NewWriter(out)
	for _, ext := range []string{".shp", ".shx", ".dbf"} {
		in, err := os.Open(filepath.Join(folder, "fixture"+ext))
		if os.IsNotExist(err) {
			continue
		}
		is.NoErr(err)

		w, err := zw.Create("ne_110m_land/fixture" + ext)
		is.NoErr(err)
		_, err = io.Copy(w, in)
		is.NoErr(err)
		in.Close()
	}
	is.NoErr(zw.Close())
	is.NoErr(out.Close())

	polygons, err := Read(zipfile, Options{})
	is.NoErr(err)
	is.Equal(len(polygons), 1)
	is.Equal(polygons[0].Area(), 100.0)
}

func TestReadZipWithoutShapefile(t *testing.T) {
	is := is.New(t)

	zipfile := filepath.Join(t.TempDir(), "empty.zip")
	out, err := os.Create(zipfile)
	is.NoErr(err)
	zw := zip.NewWriter(out)
	w, err := zw.Create("README.txt")
	is.NoErr(err)
	_, err = w.Write([]byte("nothing here"))
	is.NoErr(err)
	is.NoErr(zw.Close())
	is.NoErr(out.Close())

	_, err = ReadZip(zipfile, Options{})
	is.Err(err)
	is.Equal(err.Error(), "no shape file found in zip")
}

func TestMakePolygonsOrphanHole(t *testing.T) {
	is := is.New(t)

	outer := []model.Ring{
		{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}},
	}
	inner := []model.Ring{
		{{1, 1}, {2, 1}, {2, 2}, {1, 2}, {1, 1}},
		{{20, 20}, {21, 20}, {21, 21}, {20, 21}, {20, 20}},
	}

	polygons, err := MakePolygons(outer, inner)
	is.NoErr(err)
	is.Equal(len(polygons), 2)
	is.Equal(len(polygons[0].Interiors), 1)
	is.True(polygons[1].Exterior.IsClockwise())

	// Input is left untouched
	is.Equal(len(inner), 2)
}

func TestReadGeoJSON(t *testing.T) {
	is := is.New(t)

	in := `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1],[0,0]]]}},
		{"type":"Feature","properties":{},"geometry":{"type":"MultiPolygon","coordinates":[
			[[[10,10],[14,10],[14,14],[10,14],[10,10]],[[11,11],[12,11],[12,12],[11,12],[11,11]]],
			[[[20,20],[21,20],[21,21],[20,21],[20,20]]]
		]}}
	]}`

	polygons, err := ReadGeoJSON(strings.NewReader(in))
	is.NoErr(err)
	is.Equal(len(polygons), 3)
	is.Equal(len(polygons[1].Interiors), 1)
	is.Equal(polygons[1].Area(), 15.0)
	is.Equal(polygons[2].Exterior[0], model.Coordinate{20, 20})
}

func TestReadGeoJSONUnsupported(t *testing.T) {
	is := is.New(t)

	in := `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[0,0]}}
	]}`

	_, err := ReadGeoJSON(strings.NewReader(in))
	is.Err(err)

	_, err = Read("world.kml", Options{})
	is.Err(err)
}

func TestReadGeoJSONClosesRings(t *testing.T) {
	is := is.New(t)

	in := `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{},"geometry":{"type":"Polygon","coordinates":[[[0,0],[0,2],[2,2],[2,0]]]}}
	]}`

	polygons, err := ReadGeoJSON(strings.NewReader(in))
	is.NoErr(err)
	is.Equal(len(polygons), 1)
	is.Equal(len(polygons[0].Exterior), 5)
	is.True(polygons[0].Exterior.Closed())
	is.Equal(polygons[0].Area(), 4.0)
}
