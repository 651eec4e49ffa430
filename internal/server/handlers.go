package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/ctessum/geom"
	"github.com/go-chi/chi/v5"
	"github.com/invopop/jsonschema"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridspace/pathfind"
)

// gridInfo handles GET /api/grid
func (s *Server) gridInfo(w http.ResponseWriter, r *http.Request) {
	g := s.top.Grid()
	cols, rows := g.Dimensions()
	cw, ch := g.CellSize()
	env := g.Envelope()
	s.respondJSON(w, http.StatusOK, GridInfo{
		Cols:         cols,
		Rows:         rows,
		CellWidth:    cw,
		CellHeight:   ch,
		Connectivity: g.Connectivity().String(),
		Torus:        g.Torus(),
		Hexagonal:    g.Hexagonal(),
		ActiveCells:  g.ActiveCount(),
		Min:          fromGeom(env.Min),
		Max:          fromGeom(env.Max),
	})
}

// cellAt handles GET /api/cells/at?x=&y=
func (s *Server) cellAt(w http.ResponseWriter, r *http.Request) {
	p, err := queryPoint(r, "x", "y")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, ok := s.top.CellAt(p)
	if !ok {
		s.respondError(w, http.StatusNotFound, "point is off the grid")
		return
	}
	s.respondJSON(w, http.StatusOK, s.cellInfo(id))
}

func (s *Server) cellInfo(id int) CellInfo {
	g := s.top.Grid()
	c, _ := g.Cell(id)
	return CellInfo{
		ID:     id,
		Col:    c.Col,
		Row:    c.Row,
		Center: fromGeom(c.Geometry.Center()),
		Field:  g.FieldValue(id),
	}
}

// nearest handles GET /api/cells/nearest?x=&y=&k=
func (s *Server) nearest(w http.ResponseWriter, r *http.Request) {
	p, err := queryPoint(r, "x", "y")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	k := 1
	if v := r.URL.Query().Get("k"); v != "" {
		if k, err = strconv.Atoi(v); err != nil || k < 1 {
			s.respondError(w, http.StatusBadRequest, "Invalid k")
			return
		}
	}
	s.respondJSON(w, http.StatusOK, NearestResponse{Cells: s.top.KNearest(p, k)})
}

// neighbors handles GET /api/cells/{id}/neighbors?radius=
func (s *Server) neighbors(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid cell id")
		return
	}
	radius := 1
	if v := r.URL.Query().Get("radius"); v != "" {
		if radius, err = strconv.Atoi(v); err != nil || radius < 0 {
			s.respondError(w, http.StatusBadRequest, "Invalid radius")
			return
		}
	}
	if !s.top.Grid().Active(id) {
		s.respondError(w, http.StatusNotFound, fmt.Sprintf("cell %d not found", id))
		return
	}
	s.respondJSON(w, http.StatusOK, NeighborsResponse{
		ID:        id,
		Radius:    radius,
		Neighbors: s.top.NeighborsOf(id, radius),
	})
}

// path handles POST /api/path
func (s *Server) path(w http.ResponseWriter, r *http.Request) {
	var req PathRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	alg, err := pathfind.ParseAlgorithm(req.Algorithm)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	route, ok, err := s.top.ShortestPath(req.From.geom(), req.To.geom(), s.passability(req), alg)
	switch {
	case errors.Is(err, pathfind.ErrNegativeWeight), errors.Is(err, pathfind.ErrJumpPointTopology):
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	case !ok:
		s.respondError(w, http.StatusNotFound, "no path")
		return
	}

	wps := make([]Point, len(route.Waypoints))
	for i, p := range route.Waypoints {
		wps[i] = fromGeom(p)
	}
	s.respondJSON(w, http.StatusOK, PathResponse{
		Cells:     route.Cells,
		Waypoints: wps,
		Weight:    route.Weight,
		Algorithm: route.Algorithm.String(),
	})
}

// passability maps the request restrictions onto the engine's forms:
// weights win over a block list, and no restriction means unrestricted.
func (s *Server) passability(req PathRequest) pathfind.Passability {
	switch {
	case len(req.Weights) > 0:
		return pathfind.Weighted(req.Weights)
	case len(req.Blocked) > 0:
		open := mapset.New[int]()
		for _, id := range s.top.Grid().ActiveCells() {
			open.Put(id)
		}
		for _, id := range req.Blocked {
			open.Remove(id)
		}
		return pathfind.OpenSet(open)
	}
	return pathfind.Unrestricted()
}

// distance handles GET /api/distance?x1=&y1=&x2=&y2=
func (s *Server) distance(w http.ResponseWriter, r *http.Request) {
	a, err := queryPoint(r, "x1", "y1")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	b, err := queryPoint(r, "x2", "y2")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	d := s.top.Distance(a, b)
	if d == math.MaxFloat64 {
		s.respondError(w, http.StatusNotFound, "point is off the grid")
		return
	}
	s.respondJSON(w, http.StatusOK, DistanceResponse{Distance: d})
}

// pathSchema handles GET /api/schema/path
func (s *Server) pathSchema(w http.ResponseWriter, r *http.Request) {
	reflector := jsonschema.Reflector{}
	schema := reflector.Reflect(new(PathRequest))
	schema.Title = "Path request"
	schema.Description = "Body of POST /api/path"
	s.respondJSON(w, http.StatusOK, schema)
}

func queryPoint(r *http.Request, xKey, yKey string) (geom.Point, error) {
	q := r.URL.Query()
	x, err := strconv.ParseFloat(q.Get(xKey), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid %s coordinate", xKey)
	}
	y, err := strconv.ParseFloat(q.Get(yKey), 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("invalid %s coordinate", yKey)
	}
	return geom.Point{X: x, Y: y}, nil
}
