/*
Package koch generates Koch snowflake fractal geometry through iterative
subdivision and rasterizes the resulting polyline to a PNG image.

The geometry engine is a set of pure functions: InitialPolygon produces the
closed base triangle, Subdivide applies one Koch step to every segment and
Generate chains the two for a requested depth. ExtractHalf cuts the boundary
down to one symmetric half with a spatial midpoint test.

The package provides a command line utility for generating images and serving
the bundled web API. Check the supported commands by typing:

	$ koch --help

Example generating a snowflake and saving it as PNG:

	package main

	import (
		"log"

		"github.com/esimov/koch"
	)

	func main() {
		params := koch.DefaultParams()
		if err := params.Validate(); err != nil {
			log.Fatal(err)
		}

		boundary := koch.Generate(params.Depth, params.Scale)
		boundary = koch.ExtractHalf(boundary, params.Half)

		r := koch.NewRenderer()
		if err := r.SaveTo("snowflake.png", boundary, params); err != nil {
			log.Fatal(err)
		}
	}
*/
package koch
