// Package mesh reads mesh files far enough to know their extents.
//
// Wavefront OBJ files are parsed with gwob; only the positions of the vertices
// used by faces count towards the bounds.
package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/udhos/gwob"

	"github.com/akmonengine/boxworld/actor"
)

var ErrNoVertices = errors.New("mesh has no vertices")

// LoadBounds reads the OBJ file at path and returns its mesh-space bounds
func LoadBounds(path string) (actor.AABB, error) {
	f, err := os.Open(path)
	if err != nil {
		return actor.AABB{}, fmt.Errorf("failed to open mesh: %w", err)
	}
	defer f.Close()

	aabb, err := ReadBounds(f)
	if err != nil {
		return actor.AABB{}, fmt.Errorf("%s: %w", path, err)
	}

	return aabb, nil
}

// ReadBounds parses an OBJ stream and reduces its vertex positions to min/max extents
func ReadBounds(r io.Reader) (actor.AABB, error) {
	vertices, err := readVertices(r)
	if err != nil {
		return actor.AABB{}, err
	}
	if len(vertices) == 0 {
		return actor.AABB{}, ErrNoVertices
	}

	return actor.BoundsOf(vertices), nil
}

func readVertices(r io.Reader) ([]mgl64.Vec3, error) {
	options := &gwob.ObjParserOptions{
		IgnoreNormals: true,
		Logger: func(msg string) {
			slog.Debug("obj parser", "msg", msg)
		},
	}

	obj, err := gwob.NewObjFromReader("mesh", bufio.NewReader(r), options)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mesh: %w", err)
	}
	if obj.StrideSize == 0 || len(obj.Coord) == 0 {
		return nil, nil
	}

	n := obj.NumberOfElements()
	vertices := make([]mgl64.Vec3, 0, n)
	for i := range n {
		x, y, z := obj.VertexCoordinates(i)
		vertices = append(vertices, mgl64.Vec3{float64(x), float64(y), float64(z)})
	}

	return vertices, nil
}
