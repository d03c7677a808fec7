// Package landmass builds the world landmass from land and water fragments.
//
// All topology work (union, difference, intersection, hole detection) is
// delegated to GEOS. Input rings are not validated or repaired here: GEOS
// errors are returned as they are.
package landmass

import (
	"errors"

	"github.com/paulsmith/gogeos/geos"

	"github.com/leifgehrmann/lego-art-map-blog-post/geosutil"
	"github.com/leifgehrmann/lego-art-map-blog-post/model"
)

// LoadLandAndWater unions the land fragments and subtracts every water
// fragment from the result, one at a time.
func LoadLandAndWater(land, water []model.Polygon) (model.MultiPolygon, error) {
	if len(land) == 0 {
		return model.MultiPolygon{}, nil
	}

	world, err := Union(land)
	if err != nil {
		return nil, err
	}

	for _, w := range water {
		clip, err := geosutil.PolygonToGeos(w)
		if err != nil {
			return nil, err
		}

		// Skip the difference when the water body doesn't touch land
		intersects, err := geos.PrepareGeometry(clip).Intersects(world)
		if err != nil {
			return nil, err
		}
		if !intersects {
			continue
		}

		world, err = world.Difference(clip)
		if err != nil {
			return nil, err
		}
	}

	return geosutil.PolygonsFromGeos(world)
}

// Union merges all fragments. Overlapping and touching fragments become a
// single polygon, disjoint fragments stay separate.
func Union(fragments []model.Polygon) (*geos.Geometry, error) {
	if len(fragments) == 0 {
		return nil, errors.New("nothing to union")
	}

	geoms := make([]*geos.Geometry, 0, len(fragments))
	for _, f := range fragments {
		g, err := geosutil.PolygonToGeos(f)
		if err != nil {
			return nil, err
		}
		geoms = append(geoms, g)
	}

	collection, err := geos.NewCollection(geos.GEOMETRYCOLLECTION, geoms...)
	if err != nil {
		return nil, err
	}
	return collection.UnaryUnion()
}

// SplitAtLongitude cuts the world into the parts west and east of the
// given longitude. Geometry crossing the cut gets a new edge along it. No
// wrapping across the antimeridian happens here.
func SplitAtLongitude(world model.MultiPolygon, longitude float64) (left, right model.MultiPolygon, err error) {
	if len(world) == 0 {
		return model.MultiPolygon{}, model.MultiPolygon{}, nil
	}

	g, err := geosutil.MultiPolygonToGeos(world)
	if err != nil {
		return nil, nil, err
	}

	left, err = clipToBox(g, -180, -90, longitude, 90)
	if err != nil {
		return nil, nil, err
	}

	right, err = clipToBox(g, longitude, -90, 180, 90)
	if err != nil {
		return nil, nil, err
	}

	return left, right, nil
}

func clipToBox(g *geos.Geometry, minX, minY, maxX, maxY float64) (model.MultiPolygon, error) {
	box, err := geosutil.Box(minX, minY, maxX, maxY)
	if err != nil {
		return nil, err
	}

	clipped, err := g.Intersection(box)
	if err != nil {
		return nil, err
	}

	return geosutil.PolygonsFromGeos(clipped)
}
